package config

import (
	"rimeskin/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage rimeskin configuration",
		Long: "View and modify persistent rimeskin settings.\n\n" +
			"Configuration is stored at ~/.config/rimeskin/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
