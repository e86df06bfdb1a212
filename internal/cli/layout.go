package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/pipeline"
)

// layoutCommand creates the layout command, which prints the computed
// geometry of every label without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var lines bool

	cmd := &cobra.Command{
		Use:   "layout [labels.toml]",
		Short: "Print the computed geometry of every label",
		Long: `Print the computed geometry of every label.

For each label the table shows the anchor point, the offsets of the text
element (dy includes the vertical anchoring shift) and the transform.
With --lines, every line's key, text, dy and font size is listed too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], lines)
		},
	}

	cmd.Flags().BoolVar(&lines, "lines", false, "list the lines of every label")

	return cmd
}

// runLayout loads the document, lays it out, and prints the result.
func (c *CLI) runLayout(ctx context.Context, input string, lines bool) error {
	runner := c.newRunner()
	doc, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	labels, err := runner.LayoutDocument(ctx, doc, pipeline.Options{Logger: c.Logger})
	if err != nil {
		return err
	}

	printSuccess("Layout complete")
	printKeyValue("Document", input)
	printKeyValue("Canvas", fmt.Sprintf("%s × %s", fmtNum(doc.Width), fmtNum(doc.Height)))
	printNewline()
	fmt.Println(geometryTable(labels))

	if lines {
		for _, d := range labels {
			printNewline()
			fmt.Println(StyleTitle.Render(labelName(d)))
			for _, l := range d.Lines {
				printDetail("%s", lineSummary(l))
			}
		}
	}

	total := 0
	for _, d := range labels {
		total += len(d.Lines)
	}
	printNewline()
	printStats(len(doc.Labels), len(labels), total)
	return nil
}

// geometryTable renders one row per label.
func geometryTable(labels []label.Descriptor) string {
	rows := make([][]string, len(labels))
	for i, d := range labels {
		c := d.Container
		transform := c.Transform
		if transform == "" {
			transform = "—"
		}
		rows[i] = []string{
			labelName(d),
			fmtNum(c.X),
			fmtNum(c.Y),
			fmtNum(c.Dx),
			fmtNum(c.Dy),
			strconv.Itoa(len(d.Lines)),
			transform,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Label", "X", "Y", "Dx", "Dy", "Lines", "Transform").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight
			case col == 6:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// lineSummary describes one line in a single row of text.
func lineSummary(l label.Line) string {
	dy := "—"
	if l.Dy != nil {
		dy = fmtNum(*l.Dy)
	}
	return fmt.Sprintf("%-12s dy=%-8s %spx  %q", l.Key, dy, fmtNum(l.Style.FontSize), l.Text)
}

func labelName(d label.Descriptor) string {
	if d.Container.ID != "" {
		return d.Container.ID
	}
	texts := make([]string, len(d.Lines))
	for i, l := range d.Lines {
		texts[i] = l.Text
	}
	name := []rune(strings.Join(texts, " "))
	if len(name) > 24 {
		return string(name[:21]) + "..."
	}
	return string(name)
}

// fmtNum formats a coordinate with at most two decimals.
func fmtNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
