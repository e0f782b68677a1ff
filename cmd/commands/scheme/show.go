package scheme

import (
	"fmt"
	"text/tabwriter"

	"rimeskin/internal/scheme"
	"rimeskin/internal/tui"
	"rimeskin/internal/tui/styles"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "scheme show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the working scheme",
		Long: `Show every field of the working scheme for the active platform.

By default the effective value is printed, with "(derived)" marking values
that come from a fallback rather than from your input. --raw prints only
the values you set.

Swatches and a preview window are drawn when the "preview" config key allows
it (auto draws them only on a terminal).`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("raw", false, "Print only stored values")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	sess, closeFn, err := openSession()
	if err != nil {
		return err
	}
	defer closeFn()

	s := sess.Scheme()
	out := cmd.OutOrStdout()

	preview := previewEnabled()
	bg, err := sess.Preferences().PageBackground()
	if err != nil {
		return err
	}
	page := styles.PageColor(bg)

	fmt.Fprintf(out, "Platform: %s\n\n", s.Platform)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range scheme.FieldsFor(s.Platform) {
		stored := f.Raw(s)
		if raw {
			if stored != "" {
				fmt.Fprintf(w, "%s\t%s\n", f.Key, stored)
			}
			continue
		}

		value := f.Effective(s)
		if value == "" {
			continue
		}
		note := ""
		if stored == "" && f.Kind == scheme.KindColor {
			note = "(derived)"
		}
		if preview && f.Kind == scheme.KindColor {
			value = styles.Swatch(value, page)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Key, value, note)
	}
	w.Flush()

	if preview && !raw {
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderPreview(s, page))
	}
	return nil
}
