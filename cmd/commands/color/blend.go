package color

import (
	"fmt"

	"rimeskin/internal/color"

	"github.com/spf13/cobra"
)

// BlendCommand returns the "color blend" command.
func BlendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blend <foreground> <background>",
		Short: "Composite one color over another",
		Long: `Composite the foreground over the background ("source over") and print
the result as "#rrggbbaa".

Examples:
  rimeskin color blend '#ff000080' '#0000ff'     # #80007fff`,
		Args:         cobra.ExactArgs(2),
		RunE:         runBlend,
		SilenceUsage: true,
	}

	return cmd
}

func runBlend(cmd *cobra.Command, args []string) error {
	fg, err := color.ParseRelaxed(args[0])
	if err != nil {
		return err
	}
	bg, err := color.ParseRelaxed(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), color.Blend(fg, bg).Hexa())
	return nil
}
