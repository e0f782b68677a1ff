package color

import (
	"fmt"

	"rimeskin/internal/color"

	"github.com/spf13/cobra"
)

// ExportCommand returns the "color export" command.
func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <color>",
		Short: "Convert a color to wire form",
		Long: `Convert "#rgb", "#rrggbb" or "#rrggbbaa" to the packed "0x..." form.

Examples:
  rimeskin color export '#ff000080'              # 0x800000ff
  rimeskin color export '#ff000080' --format rgba  # 0xff000080`,
		Args:         cobra.ExactArgs(1),
		RunE:         runExport,
		SilenceUsage: true,
	}

	addFormatFlag(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	wire, err := color.ExportWire(args[0], format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), wire)
	return nil
}
