package scheme

import (
	"errors"
	"fmt"
	"os"

	"rimeskin/internal/tui"

	"github.com/spf13/cobra"
)

// confirmRestore is replaced in tests.
var confirmRestore = tui.ConfirmRestore

// RestoreCommand returns the "scheme restore" command.
func RestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Clear every override in the working scheme",
		Long: `Clear every override in the working scheme. The platform and the saved
schemes are kept.

Asks for confirmation on a terminal unless --yes is given.`,
		Args:         cobra.NoArgs,
		RunE:         runRestore,
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		if !isTerminal(os.Stdin) {
			return errors.New("refusing to restore without confirmation; pass --yes to run non-interactively")
		}
		ok, err := confirmRestore()
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Restore cancelled.")
				return nil
			}
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Restore cancelled.")
			return nil
		}
	}

	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	sess.Scheme().Restore()
	if err := sess.Commit(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Scheme restored")
	return nil
}
