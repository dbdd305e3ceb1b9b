package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag switches the CLI logger to debug level before any
// subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Wordmark renders branded logo variants as SVG",
		Long:         `Wordmark turns a brand name, palette and canvas size into a catalog of logo variants: plain wordmarks, flag underlines, icon badges and seasonal themes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.updateCommand())
	root.AddCommand(c.completionCommand())

	return root
}
