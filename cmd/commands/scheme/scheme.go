// Package scheme implements the "scheme" command group, which edits the
// working color scheme persisted in the preferences database.
package scheme

import (
	"fmt"
	"os"

	"rimeskin/internal/config"
	"rimeskin/internal/services/preferences"
	"rimeskin/internal/session"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewCommand returns the "scheme" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheme",
		Short: "Edit, export and import the working color scheme",
		Long: `Edit the working color scheme and convert it to and from the
"key: value" configuration read by weasel and squirrel.

Only the colors you set are stored. Everything else is derived when the
scheme is shown or exported.

Quick start:
  rimeskin scheme set back_color '#202020'
  rimeskin scheme set candidate_text_color '#eeeeee'
  rimeskin scheme show
  rimeskin scheme export > my_scheme.yaml`,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ExportCommand())
	cmd.AddCommand(ImportCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(UnsetCommand())
	cmd.AddCommand(RestoreCommand())
	cmd.AddCommand(EditCommand())
	cmd.AddCommand(SaveCommand())
	cmd.AddCommand(SavedCommand())

	return cmd
}

// openSession opens the default preferences store and the session over it.
// The returned close function releases the store.
func openSession() (*session.Session, func(), error) {
	svc, err := preferences.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	sess, err := session.Open(svc)
	if err != nil {
		svc.Close()
		return nil, nil, err
	}
	return sess, func() { svc.Close() }, nil
}

// isTerminal is replaced in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// previewEnabled decides whether swatches are rendered, honoring the
// "preview" config key.
func previewEnabled() bool {
	cfg, err := config.Load()
	if err != nil {
		return false
	}
	return cfg.PreviewEnabled(isTerminal(os.Stdout))
}
