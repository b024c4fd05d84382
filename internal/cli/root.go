// Package cli provides the command-line interface for relalg, grounded on
// the teacher's internal/cli/root.go cobra wiring.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/internal/cli/cmdctx"
	"github.com/darkcollective/relalg/internal/cli/commands"
	"github.com/darkcollective/relalg/internal/config"
	"github.com/darkcollective/relalg/internal/logging"
)

// Version information (set at build time).
var Version = "0.1.0"

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "relalg",
		Short:   "relalg - SQL to relational algebra translator and word verifier",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

			ctx := cmdctx.WithConfig(cmd.Context(), cfg)
			ctx = cmdctx.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./relalg.yaml)")
	rootCmd.PersistentFlags().String("vocabulary-path", "", "path to the vocabulary word list")
	rootCmd.PersistentFlags().Int("max-distance", 0, "maximum edit distance for suggestions")
	rootCmd.PersistentFlags().Int("suggestion-cap", 0, "suggestion cap stored in the loaded config (verify and serve always return at most 5 suggestions)")
	rootCmd.PersistentFlags().String("listen-addr", "", "HTTP listen address for the serve command")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewReplCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
