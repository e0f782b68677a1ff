package scheme

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExportCommand returns the "scheme export" command.
func ExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the scheme as front-end configuration",
		Long: `Print the working scheme as "key: value" lines for the active platform.

Colors are written in the wire format chosen by color_format (weasel) and
the document ends with the color_format or color_space line.

Examples:
  rimeskin scheme export
  rimeskin scheme export -o weasel.custom.yaml`,
		Args:         cobra.NoArgs,
		RunE:         runExport,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	text, err := sess.Scheme().Export()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(output, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
	return nil
}
