package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command, an interactive browser over
// the laid-out labels of a document.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [labels.toml]",
		Short: "Browse labels and their line descriptors interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	runner := c.newRunner()
	doc, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}
	labels, err := runner.LayoutDocument(ctx, doc, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		printWarning("%s has no labels with content", input)
		return nil
	}

	_, err = tea.NewProgram(NewLabelListModel(labels), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// LabelListModel - Interactive label browser
// =============================================================================

// LabelListModel is the bubbletea model for browsing laid-out labels. The
// list of labels is on top; the lines of the selected label below it.
type LabelListModel struct {
	Labels []label.Descriptor
	Cursor int
	Height int
	Offset int
}

// NewLabelListModel creates a new label list model.
func NewLabelListModel(labels []label.Descriptor) LabelListModel {
	return LabelListModel{
		Labels: labels,
		Height: 10,
	}
}

func (m LabelListModel) Init() tea.Cmd {
	return nil
}

func (m LabelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
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
			if m.Cursor < len(m.Labels)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Labels) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	case tea.WindowSizeMsg:
		// Leave room for the header and the line detail pane.
		m.Height = max(3, msg.Height/2-4)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m LabelListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Labels"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Labels))
	for i := m.Offset; i < end; i++ {
		d := m.Labels[i]
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-24s %s", cursor, labelName(d), listDimStyle.Render(anchorSummary(d)))
		if d.Portal {
			line += " " + StyleWarning.Render("portal")
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.Cursor >= 0 && m.Cursor < len(m.Labels) {
		b.WriteString("\n")
		b.WriteString(lineTable(m.Labels[m.Cursor]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Labels))))
	return b.String()
}

func anchorSummary(d label.Descriptor) string {
	c := d.Container
	s := fmt.Sprintf("(%s, %s) dy=%s", fmtNum(c.X), fmtNum(c.Y), fmtNum(c.Dy))
	if c.Transform != "" {
		s += " " + c.Transform
	}
	return s
}

// lineTable renders the lines of d with their offsets and resolved styles.
func lineTable(d label.Descriptor) string {
	rows := make([][]string, len(d.Lines))
	for i, l := range d.Lines {
		dy := "—"
		if l.Dy != nil {
			dy = fmtNum(*l.Dy)
		}
		rows[i] = []string{
			l.Key,
			l.Text,
			dy,
			string(l.TextAnchor),
			fmtNum(l.Style.FontSize) + "px",
			l.Style.Fill,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Key", "Text", "Dy", "Anchor", "Size", "Fill").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleValue
			}
			return StyleDim
		}).
		Render()
}
