package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/errors"
	"github.com/matzehuels/wordmark/pkg/pipeline"
)

// configCommand groups the settings-file subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the brand settings file",
		Long: `Manage the brand settings file.

The default file is ` + brand.DefaultPath() + `. The format follows the
extension: .toml, .yaml/.yml or .json.`,
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configLintCommand())
	cmd.AddCommand(c.configSetCommand())

	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var (
		path   string
		preset string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}
			cfg := brand.Defaults()
			if preset != "" {
				p, err := brand.LookupPreset(preset)
				if err != nil {
					return err
				}
				cfg = p.Apply(cfg)
			}
			if err := brand.Save(path, cfg); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}
			printSuccess("Created settings file")
			printFile(path)
			printNewline()
			printNextStep("Edit a value", "wordmark config set left ACME")
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", brand.DefaultPath(), "settings file to create")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "start from a dimension preset")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	_ = cmd.RegisterFlagCompletionFunc("preset", completePresets)
	return cmd
}

func (c *CLI) configShowCommand() *cobra.Command {
	var (
		flags  brandFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after the settings file, preset and flag overrides are applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.effectiveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			if asJSON {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			values, err := configValues(cfg)
			if err != nil {
				return err
			}
			for _, key := range brand.Keys() {
				printKeyValue(key, values[key])
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the default settings file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), brand.DefaultPath())
			return nil
		},
	}
}

func (c *CLI) configLintCommand() *cobra.Command {
	var flags brandFlags
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check palette entries for non-hex colors",
		Long: `Check palette entries for non-hex colors. Findings are advisory:
unrecognized color tokens are still written into the SVG unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.effectiveConfig(cmd, &flags)
			if err != nil {
				return err
			}
			findings := brand.Lint(cfg)
			if len(findings) == 0 {
				printSuccess("Palette looks good")
				return nil
			}
			for _, f := range findings {
				printWarning("%s", f)
			}
			printDetail("%d finding(s)", len(findings))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *CLI) configSetCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Change one value in the settings file",
		Example: "  wordmark config set color_red '#c00'\n  wordmark config set out_width 1600",
		Args:    cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return brand.Keys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := brand.Defaults()
			if _, err := os.Stat(path); err == nil {
				loaded, warnings, err := brand.Load(path)
				if err != nil {
					return err
				}
				for _, w := range warnings {
					loggerFromContext(cmd.Context()).Warn("settings value ignored", "error", w)
				}
				cfg = loaded
			}

			cfg, err := brand.Set(cfg, args[0], args[1])
			if err != nil {
				return err
			}
			if err := brand.Save(path, cfg); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}
			printSuccess("Set %s = %s", args[0], args[1])
			printFile(path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", brand.DefaultPath(), "settings file to edit")
	return cmd
}

// effectiveConfig resolves the configuration for the command's brand flags
// without rendering.
func (c *CLI) effectiveConfig(cmd *cobra.Command, flags *brandFlags) (brand.Config, error) {
	popts, err := flags.options(cmd)
	if err != nil {
		return brand.Config{}, err
	}
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	cfg, warnings, err := runner.LoadConfig(cmd.Context(), popts)
	if err != nil {
		return brand.Config{}, err
	}
	for _, w := range warnings {
		loggerFromContext(cmd.Context()).Warn("settings value ignored", "error", w)
	}
	return cfg, nil
}

// configValues flattens cfg into display strings keyed by settings key.
func configValues(cfg brand.Config) (map[string]string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = cast.ToString(v)
	}
	return out, nil
}
