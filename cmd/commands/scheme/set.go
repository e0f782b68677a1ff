package scheme

import (
	"fmt"
	"strings"

	"rimeskin/internal/scheme"

	"github.com/spf13/cobra"
)

// fieldsHelp lists every field with its platform and description.
func fieldsHelp() string {
	maxLen := 0
	for _, f := range scheme.Fields {
		maxLen = max(maxLen, len(f.Key))
	}

	var b strings.Builder
	b.WriteString("Fields:\n")
	for _, f := range scheme.Fields {
		desc := f.Description
		if f.Platform != "" {
			desc += " [" + string(f.Platform) + "]"
		}
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, f.Key, desc)
	}
	return b.String()
}

// SetCommand returns the "scheme set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a scheme field",
		Long: "Set one field of the working scheme.\n\n" +
			"Colors accept #rgb, #rrggbb, #rrggbbaa, or a wire color (0x...) in the\n" +
			"scheme's color_format.\n\n" +
			fieldsHelp() +
			"\nExamples:\n" +
			"  rimeskin scheme set text_color '#333'\n" +
			"  rimeskin scheme set name 'Ink & Paper'\n" +
			"  rimeskin scheme set color_format rgba",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	s := sess.Scheme()
	if err := s.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	f := scheme.Lookup(args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", f.Key, f.Raw(s))
	if !f.AppliesTo(s.Platform) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s only applies to %s; the active platform is %s\n",
			f.Key, f.Platform, s.Platform)
	}
	return nil
}

// UnsetCommand returns the "scheme unset" command.
func UnsetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "unset <field>",
		Short:        "Clear a scheme field",
		Long:         "Clear one field of the working scheme so its value is derived again.\n\n" + fieldsHelp(),
		Args:         cobra.ExactArgs(1),
		RunE:         runUnset,
		SilenceUsage: true,
	}

	return cmd
}

func runUnset(cmd *cobra.Command, args []string) error {
	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := sess.Scheme().Unset(args[0]); err != nil {
		return err
	}
	if err := sess.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", scheme.Lookup(args[0]).Key)
	return nil
}
