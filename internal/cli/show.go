package cli

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/io"
	"github.com/matzehuels/wordmark/pkg/pipeline"
	"github.com/matzehuels/wordmark/pkg/render"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// showCommand prints one variant's SVG source.
func (c *CLI) showCommand() *cobra.Command {
	var (
		flags   brandFlags
		copyOut bool
		save    string
	)

	cmd := &cobra.Command{
		Use:               "show <variant>",
		Short:             "Print the SVG source of one variant",
		Example:           "  wordmark show crown\n  wordmark show 18 --copy",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeVariants,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.renderOne(cmd, &flags, args[0])
			if err != nil {
				return err
			}

			switch {
			case copyOut:
				if err := copyToClipboard(out.SVG); err != nil {
					return err
				}
				printSuccess("Copied %s to clipboard", out.Label)
				printDetail("%d bytes", len(out.SVG))
			case save != "":
				path, err := io.ExportOne(out.Label, []byte(out.SVG), render.FormatSVG, save)
				if err != nil {
					return err
				}
				printSuccess("Saved %s", out.Label)
				printFile(path)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), out.SVG)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the SVG to the clipboard instead of printing it")
	cmd.Flags().StringVar(&save, "save", "", "write the SVG into this directory")
	cmd.MarkFlagsMutuallyExclusive("copy", "save")
	return cmd
}

// renderOne renders a single variant with the command's brand flags.
func (c *CLI) renderOne(cmd *cobra.Command, flags *brandFlags, ref string) (variants.Output, error) {
	ctx := cmd.Context()
	v, err := variants.Default().Lookup(ref)
	if err != nil {
		return variants.Output{}, err
	}
	flags.only = []string{v.ID}

	popts, err := flags.options(cmd)
	if err != nil {
		return variants.Output{}, err
	}
	_, outs, err := c.renderCatalog(ctx, flags, popts)
	if err != nil {
		return variants.Output{}, err
	}
	out := outs[0]
	if out.Failed() {
		loggerFromContext(ctx).Warn("variant failed", "id", out.ID, "error", out.Error)
	}
	return out, nil
}

// renderCatalog loads the config for popts and renders its selection.
func (c *CLI) renderCatalog(ctx context.Context, flags *brandFlags, popts pipeline.Options) (brand.Config, []variants.Output, error) {
	runner, err := c.newRunner(ctx, flags.cacheOpts)
	if err != nil {
		return brand.Config{}, nil, err
	}
	defer runner.Close()

	cfg, warnings, err := runner.LoadConfig(ctx, popts)
	if err != nil {
		return brand.Config{}, nil, err
	}
	for _, w := range warnings {
		loggerFromContext(ctx).Warn("settings value ignored", "error", w)
	}
	outs, err := runner.Render(ctx, cfg, popts)
	return cfg, outs, err
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrCodeUnsupported, "no clipboard available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "copy to clipboard")
	}
	return nil
}
