package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/buildinfo"
)

// updateCommand reports whether a newer release is published.
func (c *CLI) updateCommand() *cobra.Command {
	var opts cacheOpts

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release",
		Long:  `Check GitHub for a newer wordmark release. The command only reports; it never replaces the binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.newCache(ctx, opts)
			if err != nil {
				return err
			}
			defer store.Close()

			checker := buildinfo.NewChecker(store)
			printInline("Checking %s releases...", checker.Repo)
			info, err := checker.Check(ctx, buildinfo.Version)
			printNewline()
			if err != nil {
				return err
			}

			printKeyValue("Current", info.Current)
			printKeyValue("Latest", info.Latest)
			switch {
			case buildinfo.IsDevBuild():
				printInfo("Development build; latest release is %s", info.Latest)
			case info.Available:
				printWarning("Update available: %s → %s", info.Current, info.Latest)
			default:
				printSuccess("You are on the latest release")
			}
			if info.Available || buildinfo.IsDevBuild() {
				fmt.Println("  " + StyleLink.Render(info.URL))
			}
			if info.Cached {
				printDetail("release data from cache")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always query GitHub")
	return cmd
}
