package scheme

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ImportCommand returns the "scheme import" command.
func ImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "Replace the scheme with front-end configuration",
		Long: `Read "key: value" lines and replace the working scheme with them.

Colors must be in wire form ("0x...") and are read in the document's
color_format, or abgr when it has none. Unknown keys and malformed lines are
ignored. If any color fails to parse nothing is changed.

With no argument, or "-", the document is read from stdin.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runImport,
		SilenceUsage: true,
	}

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read scheme: %w", err)
	}

	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := sess.Scheme().Import(string(data)); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d fields\n", sess.Scheme().Snapshot().Overrides())
	return nil
}
