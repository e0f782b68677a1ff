package scheme

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SaveCommand returns the "scheme save" command.
func SaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a copy of the working scheme",
		Long: `Append a copy of the working scheme to the saved list and print its id.
Use "scheme saved load <id>" to bring it back.`,
		Args:         cobra.NoArgs,
		RunE:         runSave,
		SilenceUsage: true,
	}

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := sess.SaveScheme()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
