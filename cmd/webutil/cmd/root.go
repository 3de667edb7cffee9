// Package cmd holds the webutil cobra commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fruitsalade/fruitsalade/webutil/internal/config"
	"github.com/fruitsalade/fruitsalade/webutil/internal/logging"
)

// Execute runs the root command.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfg     *config.Config
		verbose bool
	)

	root := &cobra.Command{
		Use:   "webutil",
		Short: "FruitSalade web helpers",
		Long: `Formatting and validation helpers used by the FruitSalade file browser.

Examples:
  webutil size 1536              # 1.5 KB
  webutil date 2024-03-05T01:02:03Z
  webutil icon report.pdf song.flac
  webutil password 'Abcdef12!@#$'
  webutil validate --username alice --password secret1
  echo -n hello | webutil copy
  webutil serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c

			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			format := cfg.LogFormat
			if cmd.Name() != "serve" {
				format = "console"
			}
			return logging.Init(logging.Config{Level: level, Format: format, OutputPath: "stderr"})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	conf := func() *config.Config { return cfg }
	root.AddCommand(
		newSizeCmd(),
		newDateCmd(),
		newIconCmd(),
		newPasswordCmd(),
		newValidateCmd(),
		newCopyCmd(conf),
		newServeCmd(conf),
	)
	return root
}
