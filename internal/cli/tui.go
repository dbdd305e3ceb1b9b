package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordmark/pkg/render/variants"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listSourceStyle = lipgloss.NewStyle().Foreground(colorGray).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorDim).
			PaddingLeft(1)
)

// sourceLines is how many lines of SVG source the browser shows.
const sourceLines = 8

// =============================================================================
// browseCommand - Interactive variant browser
// =============================================================================

// browseCommand opens an interactive list of rendered variants.
func (c *CLI) browseCommand() *cobra.Command {
	var flags brandFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse variants interactively",
		Long: `Browse the rendered catalog in the terminal. Press c to copy the
highlighted SVG to the clipboard, or enter to print it and exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			_, outs, err := c.renderCatalog(cmd.Context(), &flags, popts)
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewVariantListModel(outs), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(VariantListModel); ok && m.Selected != nil {
				fmt.Fprintln(cmd.OutOrStdout(), m.Selected.SVG)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// VariantListModel - Interactive variant selection
// =============================================================================

// VariantListModel is the bubbletea model for browsing rendered variants.
type VariantListModel struct {
	Outputs  []variants.Output
	Cursor   int
	Selected *variants.Output
	Height   int
	Offset   int
	Status   string

	// Copy writes text to the clipboard.
	Copy func(string) error
}

// NewVariantListModel creates a new variant list model.
func NewVariantListModel(outs []variants.Output) VariantListModel {
	return VariantListModel{
		Outputs: outs,
		Height:  10,
		Copy:    copyToClipboard,
	}
}

func (m VariantListModel) Init() tea.Cmd {
	return nil
}

func (m VariantListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Outputs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "c":
			if len(m.Outputs) == 0 {
				return m, nil
			}
			o := m.Outputs[m.Cursor]
			if err := m.Copy(o.SVG); err != nil {
				m.Status = StyleWarning.Render(err.Error())
			} else {
				m.Status = StyleSuccess.Render("copied " + o.Label)
			}
		case "enter":
			if len(m.Outputs) == 0 {
				return m, nil
			}
			o := m.Outputs[m.Cursor]
			m.Selected = &o
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - sourceLines - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m VariantListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Logo Variants"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  c copy  ⏎ print  q quit"))
	b.WriteString("\n\n")

	if len(m.Outputs) == 0 {
		b.WriteString(listDimStyle.Render("  no variants"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Outputs))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		o := m.Outputs[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		status := "✓"
		if o.Failed() {
			status = "✗"
		}
		rows = append(rows, []string{cursor, fmt.Sprintf("%02d", o.Number), o.ID, fmt.Sprintf("%d×%d", o.Width, o.Height), status})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Variant", "Size", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Outputs) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Outputs[idx].Failed() {
				base = base.Foreground(colorRed)
			} else if col == 3 {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	cur := m.Outputs[m.Cursor]
	b.WriteString(StyleHighlight.Render(cur.Label))
	b.WriteString("\n")
	if cur.Failed() {
		b.WriteString(StyleWarning.Render(cur.Error))
		b.WriteString("\n")
	}
	b.WriteString(listSourceStyle.Render(sourceExcerpt(cur.SVG, sourceLines)))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Outputs))))
	if m.Status != "" {
		b.WriteString("  " + m.Status)
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// sourceExcerpt returns the first n lines of svg, marking truncation.
func sourceExcerpt(svg string, n int) string {
	lines := strings.Split(svg, "\n")
	if len(lines) <= n {
		return svg
	}
	return strings.Join(lines[:n], "\n") + "\n" + fmt.Sprintf("… %d more lines", len(lines)-n)
}
