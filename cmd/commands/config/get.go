package config

import (
	"fmt"
	"os"
	"strings"

	"rimeskin/internal/config"
	"rimeskin/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// Replaced in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value.\n\n" +
			"If no key is provided and running in a terminal, opens an interactive\n" +
			"config viewer where you can browse and edit all settings.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  rimeskin config get                 # interactive viewer\n" +
			"  rimeskin config get preview         # print a single value\n" +
			"  rimeskin config get --key preview",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "Configuration key to fetch (prints a single value)")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	keyFlag, _ := cmd.Flags().GetString("key")
	if len(args) == 1 {
		keyFlag = args[0]
	}
	keyFlag = strings.TrimSpace(keyFlag)

	// No key: open interactive config viewer.
	if keyFlag == "" {
		if isTerminal(os.Stdout) {
			if err := tui.RunConfigView(); err != nil {
				return fmt.Errorf("config view failed: %w", err)
			}
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		for _, spec := range config.Keys {
			value := spec.Get(cfg)
			if value == "" {
				value = "(not set)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, value)
		}
		return nil
	}

	spec := config.Lookup(keyFlag)
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", keyFlag, strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value := spec.Get(cfg)
	if value == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}
