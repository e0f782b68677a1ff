package color

import (
	"fmt"

	"rimeskin/internal/color"

	"github.com/spf13/cobra"
)

// ImportCommand returns the "color import" command.
func ImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <0x...>",
		Short: "Convert a wire color to #rrggbbaa",
		Long: `Convert a packed "0x" color with six or eight hex digits to "#rrggbbaa".
Six digits mean an opaque color.

Examples:
  rimeskin color import 0x800000ff               # #ff000080
  rimeskin color import 0x336699 --format argb   # #336699ff`,
		Args:         cobra.ExactArgs(1),
		RunE:         runImport,
		SilenceUsage: true,
	}

	addFormatFlag(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	hexa, err := color.ImportWire(args[0], format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hexa)
	return nil
}
