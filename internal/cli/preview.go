package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/render/preview"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// previewCommand writes an HTML page for the whole catalog or one variant.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags    brandFlags
		output   string
		selected string
	)

	cmd := &cobra.Command{
		Use:   "preview [variant]",
		Short: "Write an HTML preview page",
		Long: `Write an HTML page showing every variant, or a single variant when one is named.

Without --out the page goes to the system temp directory as
preview_all.html or preview_NN.html.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeVariants,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				page string
				name string
			)
			if len(args) == 1 {
				out, err := c.renderOne(cmd, &flags, args[0])
				if err != nil {
					return err
				}
				page = preview.Single(out.Label, out.SVG)
				name = fmt.Sprintf("preview_%02d.html", out.Number)
			} else {
				popts, err := flags.options(cmd)
				if err != nil {
					return err
				}
				_, outs, err := c.renderCatalog(cmd.Context(), &flags, popts)
				if err != nil {
					return err
				}
				idx, err := selectedIndex(outs, selected)
				if err != nil {
					return err
				}
				page = preview.Gallery(outs, idx)
				name = "preview_all.html"
			}

			path := output
			if path == "" {
				path = filepath.Join(os.TempDir(), name)
			}
			if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			printSuccess("Wrote preview")
			printFile(path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file")
	cmd.Flags().StringVar(&selected, "select", "", "highlight this variant in the gallery")
	return cmd
}

// selectedIndex maps a variant reference to its position in outs.
// An empty reference selects nothing.
func selectedIndex(outs []variants.Output, ref string) (int, error) {
	if ref == "" {
		return preview.NoSelection, nil
	}
	v, err := variants.Default().Lookup(ref)
	if err != nil {
		return preview.NoSelection, err
	}
	for i, o := range outs {
		if o.Number == v.Number {
			return i, nil
		}
	}
	return preview.NoSelection, nil
}
