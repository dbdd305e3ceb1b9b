package brand

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("toml") })
	})
	return validate
}

// Lint reports palette entries that are not hex colors. Findings are
// advisory: unknown color tokens are still written to the output verbatim.
func Lint(c Config) []string {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %q is not a hex color", fe.Field(), fe.Value()))
	}
	return out
}
