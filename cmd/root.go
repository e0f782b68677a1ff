package cmd

import (
	"errors"
	"io/fs"
	"os"

	colorcmd "rimeskin/cmd/commands/color"
	cfgcmd "rimeskin/cmd/commands/config"
	prefscmd "rimeskin/cmd/commands/prefs"
	schemecmd "rimeskin/cmd/commands/scheme"
	"rimeskin/internal/config"
	"rimeskin/internal/database"
	"rimeskin/internal/services/preferences"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var (
		verbose   bool
		ephemeral bool
	)

	var cmd = &cobra.Command{
		Use:   "rimeskin",
		Short: "A color scheme editor for the Rime input method",
		Long: `rimeskin edits candidate-window color schemes for the Rime input method
front-ends Weasel (Windows) and Squirrel (macOS). Schemes are kept in a local
preferences database and exported as YAML patches for weasel.custom.yaml or
squirrel.custom.yaml.

Quick start:
  rimeskin scheme edit                 # Interactive editor
  rimeskin scheme set back_color '#1e1e1e'
  rimeskin scheme export -o ink.yaml   # Write the style patch
  rimeskin prefs set platform squirrel # Target macOS`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(verbose, ephemeral)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep preferences in memory for this run only")

	cmd.AddCommand(colorcmd.NewCommand())
	cmd.AddCommand(schemecmd.NewCommand())
	cmd.AddCommand(prefscmd.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// setup configures logging, loads .env and applies the configured
// database location before any subcommand runs.
func setup(verbose, ephemeral bool) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("ignoring unreadable .env file")
	}

	if ephemeral {
		preferences.SetDefaultStore(preferences.Ephemeral)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabasePath != "" {
		database.SetPath(cfg.DatabasePath)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
