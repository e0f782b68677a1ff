package scheme

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"rimeskin/internal/scheme"
	"rimeskin/internal/tui"

	"github.com/spf13/cobra"
)

// pickSaved is replaced in tests.
var pickSaved = tui.PickSavedScheme

// SavedCommand returns the "scheme saved" command group.
func SavedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved schemes",
		Long:  `List, load and remove schemes stored with "scheme save".`,
		Args:  cobra.NoArgs,
		RunE:  runSavedList,
		// Bare "saved" lists, like "saved list".
		SilenceUsage: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "list",
		Short:        "List saved schemes",
		Args:         cobra.NoArgs,
		RunE:         runSavedList,
		SilenceUsage: true,
	})
	cmd.AddCommand(&cobra.Command{
		Use:          "remove <id>",
		Aliases:      []string{"rm"},
		Short:        "Remove a saved scheme",
		Args:         cobra.ExactArgs(1),
		RunE:         runSavedRemove,
		SilenceUsage: true,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "load [id]",
		Short: "Replace the working scheme with a saved one",
		Long: `Replace the working scheme with a saved one. The platform is kept.
Without an id a picker is shown on a terminal.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSavedLoad,
		SilenceUsage: true,
	})

	return cmd
}

func runSavedList(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	saved := sess.Saved()
	if len(saved) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved schemes.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAUTHOR\tFIELDS")
	for _, sv := range saved {
		name := sv.Name()
		if name == "" {
			name = "-"
		}
		author := sv.Values[scheme.KeyAuthor]
		if author == "" {
			author = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", sv.ID, name, author, len(sv.Values))
	}
	return w.Flush()
}

func runSavedRemove(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if _, ok := sess.Find(args[0]); !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No saved scheme with id %q\n", args[0])
		return nil
	}
	if err := sess.RemoveSavedScheme(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}

func runSavedLoad(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		if !isTerminal(os.Stdin) {
			return errors.New("an id is required when not running in a terminal")
		}
		id, err = pickSaved(sess.Saved())
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
	}

	ok, err := sess.ImportSavedScheme(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no saved scheme with id %q", id)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %s\n", id)
	return nil
}
