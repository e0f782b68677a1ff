package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"rimeskin/internal/scheme"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when a user cancels an interactive flow.
var ErrAborted = errors.New("aborted by user")

// runForm creates and runs a huh.Form, translating ErrUserAborted to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func accessibleMode() bool { return os.Getenv("ACCESSIBLE") != "" }

// PickSavedScheme asks the user to choose one of saved and returns its id.
func PickSavedScheme(saved []scheme.Saved) (string, error) {
	if len(saved) == 0 {
		return "", fmt.Errorf("no saved schemes")
	}

	var id string
	opts := buildSavedOptions(saved)
	field := huh.NewSelect[string]().
		Title("Load saved scheme").
		Description("The working scheme is replaced by the selection.").
		Options(opts...).
		Value(&id).
		Height(selectHeight(len(opts), 12))

	if err := runForm(accessibleMode(), huh.NewGroup(field)); err != nil {
		return "", err
	}
	return id, nil
}

// ConfirmRestore asks before every override of the working scheme is
// cleared.
func ConfirmRestore() (bool, error) {
	var confirm bool
	field := huh.NewConfirm().
		Title("Restore the default scheme?").
		Description("Every color override is cleared.").
		Affirmative("Restore").
		Negative("Cancel").
		Value(&confirm)

	if err := runForm(accessibleMode(), huh.NewGroup(field)); err != nil {
		return false, err
	}
	return confirm, nil
}

// SelectPlatform asks for the target front-end, preselecting current.
func SelectPlatform(current scheme.Platform) (scheme.Platform, error) {
	p := current
	field := huh.NewSelect[scheme.Platform]().
		Title("Platform").
		Options(
			huh.NewOption("weasel (Windows)", scheme.Weasel),
			huh.NewOption("squirrel (macOS)", scheme.Squirrel),
		).
		Value(&p)

	if err := runForm(accessibleMode(), huh.NewGroup(field)); err != nil {
		return "", err
	}
	return p, nil
}

// buildSavedOptions labels each saved scheme with its name (or "untitled"),
// author and a short id.
func buildSavedOptions(saved []scheme.Saved) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(saved))
	for _, sv := range saved {
		opts = append(opts, huh.NewOption(savedLabel(sv), sv.ID))
	}
	return opts
}

func savedLabel(sv scheme.Saved) string {
	name := strings.TrimSpace(sv.Name())
	if name == "" {
		name = "untitled"
	}
	parts := []string{name}
	if author := strings.TrimSpace(sv.Values[scheme.KeyAuthor]); author != "" {
		parts = append(parts, "by "+author)
	}
	parts = append(parts, "("+shortID(sv.ID)+")")
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// selectHeight clamps a select's visible rows.
func selectHeight(n, limit int) int {
	if n < 1 {
		return 1
	}
	return min(n, limit)
}
