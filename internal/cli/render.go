package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/buildinfo"
	"github.com/matzehuels/wordmark/pkg/io"
	"github.com/matzehuels/wordmark/pkg/pipeline"
	"github.com/matzehuels/wordmark/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	brandFlags
	output    string  // output directory
	format    string  // svg, png or pdf
	scale     float64 // PNG scale factor
	parallel  bool    // render variants concurrently
	save      bool    // write the effective config back to the settings file
	noPreview bool    // skip preview.html
}

// renderCommand creates the render command for writing the catalog to disk.
//
// Default settings:
//   - output: ./logos
//   - format: svg
//   - scale: 2 (PNG only)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		output: defaultOutDir,
		format: pipeline.DefaultFormat,
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render all logo variants to files",
		Long: `Render every variant of the catalog (or the --only selection) into a directory.

Files are named NN_<label>.<format>; a preview.html gallery and a manifest.json
describing the run are written alongside.`,
		Example: `  wordmark render --left WALZLAGER --right KONIG --tld .DE
  wordmark render --preset social --only crown,halloween -f png
  wordmark render --from logos/manifest.json -f pdf -o print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.options(cmd)
			if err != nil {
				return err
			}
			popts.Format = opts.format
			popts.Scale = opts.scale
			popts.Parallel = opts.parallel
			return c.runRender(cmd.Context(), popts, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "render variants concurrently")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the effective settings to the settings file")
	cmd.Flags().BoolVar(&opts.noPreview, "no-preview", false, "do not write preview.html")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{render.FormatSVG, render.FormatPNG, render.FormatPDF}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runRender executes the pipeline and exports the result.
func (c *CLI) runRender(ctx context.Context, popts pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, opts.cacheOpts)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spin *Spinner
	if popts.Format != "" && popts.Format != render.FormatSVG {
		spin = newSpinner(ctx, os.Stderr, fmt.Sprintf("Converting to %s...", popts.Format))
		spin.Start()
	}
	result, err := runner.Execute(ctx, popts)
	artifacts := 0
	if result != nil {
		artifacts = len(result.Artifacts)
	}
	if err := finishConversion(spin, err, popts.Format, artifacts); err != nil {
		return err
	}

	manifest, err := io.ExportAll(ctx, result, popts.Format, opts.output, io.ExportOptions{
		Version:     buildinfo.Version,
		SkipPreview: opts.noPreview,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d variants", result.Stats.Variants))

	printSuccess("Wrote %d files to %s", len(manifest.Files), opts.output)
	printRenderStats(result.Stats.Variants, result.Stats.Failed, result.CacheInfo.CatalogHit)
	for _, o := range result.Failed() {
		printWarning("%02d %s failed: %s", o.Number, o.ID, o.Error)
	}
	for _, w := range result.Warnings {
		printWarning("%v", w)
	}

	if opts.save {
		path := opts.configPath
		if path == "" {
			path = brand.DefaultPath()
		}
		if err := brand.Save(path, result.Config); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
		printInfo("Saved settings")
		printFile(path)
	}

	if !opts.noPreview {
		printNextStep("Open the gallery", "open "+filepath.Join(opts.output, io.PreviewFile))
	}
	return nil
}

// finishConversion stops spin according to the pipeline outcome. A canceled
// parent context yields context.Canceled so main exits with 130.
func finishConversion(spin *Spinner, err error, format string, artifacts int) error {
	if spin == nil {
		return err
	}
	if err != nil {
		if spin.Cancelled() {
			spin.Stop()
			return fmt.Errorf("conversion to %s: %w", format, context.Canceled)
		}
		spin.StopWithError("Conversion to %s failed", format)
		return err
	}
	spin.StopWithSuccess("Converted %d files to %s", artifacts, format)
	return nil
}
