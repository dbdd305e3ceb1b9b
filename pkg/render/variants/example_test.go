package variants_test

import (
	"fmt"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

func ExampleCatalog_Render() {
	cfg := brand.Defaults()
	cfg.Left, cfg.Right, cfg.TLD = "WALZLAGER", "KONIG", ".DE"

	outs := variants.Default().Render(cfg)
	fmt.Println(len(outs))
	fmt.Println(outs[0].Label, outs[0].Width, outs[0].Height)
	// Output:
	// 19
	// 01 - Basic 1200 140
}

func ExampleCatalog_Lookup() {
	v, err := variants.Default().Lookup("18")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(v.ID, v.Label)
	// Output: halloween 18 - Halloween
}

func ExampleCatalog_Select() {
	sel, _ := variants.Default().Select("crown", "2")
	for _, v := range sel {
		fmt.Printf("%02d %s\n", v.Number, v.ID)
	}
	// Output:
	// 02 flag
	// 03 crown
}
