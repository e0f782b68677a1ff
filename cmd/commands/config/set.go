package config

import (
	"fmt"
	"strings"

	"rimeskin/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  rimeskin config set preview never\n" +
			"  rimeskin config set database-path ~/rimeskin.db",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) {
	value := args[1]

	spec := config.Lookup(args[0])
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	if spec.Validate != nil {
		if err := spec.Validate(value); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, spec.Get(cfg))
}
