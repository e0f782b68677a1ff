package scheme

import (
	"errors"
	"fmt"
	"os"

	"rimeskin/internal/tui"
	"rimeskin/internal/tui/styles"

	"github.com/spf13/cobra"
)

// EditCommand returns the "scheme edit" command.
func EditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the scheme interactively",
		Long: `Open the interactive editor: browse every field of the active platform,
edit or clear values, switch platform, and watch the preview update.

Changes are saved as soon as they are applied.`,
		Args:         cobra.NoArgs,
		RunE:         runEdit,
		SilenceUsage: true,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("interactive mode requires a terminal; use \"scheme set\" instead")
	}

	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	bg, err := sess.Preferences().PageBackground()
	if err != nil {
		return err
	}
	if err := tui.RunSchemeEditor(sess, styles.PageColor(bg)); err != nil {
		return fmt.Errorf("scheme editor failed: %w", err)
	}
	return nil
}
