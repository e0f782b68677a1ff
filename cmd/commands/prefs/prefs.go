// Package prefs implements the "prefs" command group for the persisted
// editor preferences.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"rimeskin/internal/prefs"
	"rimeskin/internal/services/preferences"
	"rimeskin/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Replaced in tests.
var (
	isTerminal     = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
	selectPlatform = tui.SelectPlatform
)

const keysHelp = `Available keys:
  platform         Target front-end: weasel (Windows) or squirrel (macOS)
  pageBackground   Preview page background: light or dark
  pageLanguage     Interface language: zh-Hans or zh-Hant
  saved            Saved schemes (read-only; see "scheme saved")
`

// NewCommand returns the "prefs" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and change editor preferences",
		Long: "View and change the preferences stored alongside the working scheme.\n\n" +
			keysHelp,
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())

	return cmd
}

// GetCommand returns the "prefs get" command.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print preferences",
		Long: "Print one preference, or every preference when no key is given.\n\n" +
			keysHelp,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, err := preferences.Open()
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer svc.Close()

	if len(args) == 1 {
		value, err := svc.Get(strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, key := range preferences.Keys() {
		if key == prefs.KeySaved {
			fmt.Fprintf(w, "%s:\t%s\n", key, savedSummary(svc))
			continue
		}
		value, err := svc.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\t%s\n", key, value)
	}
	return w.Flush()
}

func savedSummary(svc *preferences.Service) string {
	saved, err := svc.Saved()
	switch {
	case errors.Is(err, preferences.ErrCorrupt):
		return "unreadable (replaced on next save)"
	case err != nil:
		return "error: " + err.Error()
	}
	return fmt.Sprintf("%d saved", len(saved))
}

// SetCommand returns the "prefs set" command.
func SetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Change a preference",
		Long: "Change a preference.\n\n" +
			"Run \"prefs set platform\" without a value on a terminal to pick one.\n\n" +
			keysHelp +
			"\nExamples:\n" +
			"  rimeskin prefs set platform squirrel\n" +
			"  rimeskin prefs set pageBackground dark",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         runSet,
		SilenceUsage: true,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	svc, err := preferences.Open()
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	defer svc.Close()

	key := strings.TrimSpace(args[0])

	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == prefs.KeyPlatform && isTerminal(os.Stdin):
		current, err := svc.Platform()
		if err != nil {
			return err
		}
		p, err := selectPlatform(current)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			return err
		}
		value = string(p)
	default:
		return fmt.Errorf("a value is required for %q", key)
	}

	if err := svc.Set(key, value); err != nil {
		return err
	}

	stored, err := svc.Get(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", key, stored)
	return nil
}

