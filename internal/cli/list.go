package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/brand"
	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// listCommand prints the catalog with canvas sizes for the current config.
func (c *CLI) listCommand() *cobra.Command {
	var flags brandFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the logo variants",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			cfg, outs, err := c.renderCatalog(cmd.Context(), &flags, popts)
			if err != nil {
				return err
			}
			fmt.Println(catalogTable(outs))
			printDetail("%s %s%s  %dx%d", cfg.Left, cfg.Right, cfg.TLD, cfg.OutWidth, cfg.OutHeight)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

// catalogTable renders outputs as a bordered table.
func catalogTable(outs []variants.Output) string {
	rows := make([][]string, len(outs))
	for i, o := range outs {
		size := fmt.Sprintf("%d×%d", o.Width, o.Height)
		label := o.Label
		if o.Failed() {
			size = "—"
			label = o.Error
		}
		rows[i] = []string{fmt.Sprintf("%02d", o.Number), o.ID, label, size}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Label", "Canvas").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(outs) && outs[row].Failed() {
				return base.Foreground(colorRed)
			}
			switch col {
			case 0:
				return base.Foreground(colorCyan)
			case 3:
				return base.Foreground(colorGray)
			}
			return base
		}).
		Render()
}

// presetsCommand lists the dimension presets.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List dimension presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rows := make([][]string, len(brand.Presets))
			for i, p := range brand.Presets {
				rows[i] = []string{p.Name, p.Title, fmt.Sprintf("%d×%d", p.Width, p.Height), strconv.Itoa(p.FontSize)}
			}
			fmt.Println(table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Preset", "Use", "Canvas", "Font").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == headerRow {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					if col == 0 {
						return StyleHighlight.Padding(0, 1)
					}
					return lipgloss.NewStyle().Padding(0, 1)
				}).
				Render())
			printNextStep("Use one", "wordmark render --preset social")
		},
	}
}

// completePresets completes --preset values.
func completePresets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(brand.Presets))
	for i, p := range brand.Presets {
		names[i] = p.Name + "\t" + p.Title
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeVariants completes variant ids.
func completeVariants(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	for _, v := range variants.Default() {
		ids = append(ids, v.ID+"\t"+v.Label)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
