package cli

import (
	"context"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/textlabel/pkg/io"
)

// convertCommand creates the convert command, which re-encodes a label
// document in another format.
func (c *CLI) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a label document between TOML, YAML and JSON",
		Long: `Convert a label document between TOML, YAML and JSON.

Both formats are picked from the file extensions. The input is validated
before it is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *CLI) runConvert(ctx context.Context, input, output string) error {
	if _, err := pkgio.FormatFromPath(output); err != nil {
		return err
	}
	doc, err := c.newRunner().Load(ctx, input)
	if err != nil {
		return err
	}
	if err := pkgio.Export(doc, output); err != nil {
		return err
	}

	printSuccess("Converted %d labels", len(doc.Labels))
	printFile(output)
	printNewline()
	printNextStep("Render", appName+" render "+output)
	return nil
}
