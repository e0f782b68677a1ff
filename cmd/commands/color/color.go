// Package color implements the "color" command group: one-off conversions
// between the canonical color form and the wire formats written to
// front-end configuration.
package color

import (
	"strings"

	"rimeskin/internal/color"

	"github.com/spf13/cobra"
)

// NewCommand returns the "color" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert and blend colors",
		Long: `Convert colors between the "#rrggbbaa" form used by rimeskin and the
packed "0x..." form read by the input method front-ends, and composite
translucent colors.

Wire formats: ` + formatList() + ` (default ` + string(color.DefaultFormat) + `).`,
	}

	cmd.AddCommand(ExportCommand())
	cmd.AddCommand(ImportCommand())
	cmd.AddCommand(BlendCommand())

	return cmd
}

func formatList() string {
	names := make([]string, 0, 3)
	for _, f := range color.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(color.DefaultFormat), "Wire format ("+formatList()+")")
}

func formatFlag(cmd *cobra.Command) (color.Format, error) {
	v, _ := cmd.Flags().GetString("format")
	return color.ParseFormat(v)
}
