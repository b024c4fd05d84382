package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/internal/api"
	"github.com/darkcollective/relalg/internal/cli/cmdctx"
	"github.com/darkcollective/relalg/internal/vocabload"
)

// NewServeCommand creates the serve command, which starts the /verify
// HTTP API and watches the vocabulary file for changes until
// interrupted.
func NewServeCommand() *cobra.Command {
	var sessionSecret string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the word-verification HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdctx.Config(cmd.Context())
			logger := cmdctx.Logger(cmd.Context())

			loader := vocabload.New(cfg.VocabularyPath, logger)
			if err := loader.LoadOnce(); err != nil {
				return err
			}

			if sessionSecret == "" {
				sessionSecret = "relalg-dev-secret"
			}

			srv := api.New(api.Config{
				Vocab:         loader.Vocabulary(),
				Addr:          cfg.ListenAddr,
				MaxDistance:   cfg.MaxDistance,
				SessionSecret: sessionSecret,
				Logger:        logger,
				Watch:         loader.Watch,
			})

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return srv.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&sessionSecret, "session-secret", "", "cookie session secret (a fixed built-in development secret is used if empty)")
	return cmd
}
