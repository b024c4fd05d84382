package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/internal/cli/cmdctx"
	"github.com/darkcollective/relalg/internal/vocabload"
	"github.com/darkcollective/relalg/pkg/verify"
)

// NewVerifyCommand creates the verify command, which checks each distinct
// word of stdin (or an --input file) against the configured vocabulary.
func NewVerifyCommand() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify words against the vocabulary, reading from stdin by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdctx.Config(cmd.Context())
			logger := cmdctx.Logger(cmd.Context())

			loader := vocabload.New(cfg.VocabularyPath, logger)
			if err := loader.LoadOnce(); err != nil {
				return err
			}

			var r io.Reader = os.Stdin
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input file: %w", err)
				}
				defer f.Close()
				r = f
			}

			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			report := verify.Report(loader.Vocabulary(), string(data), cfg.MaxDistance)
			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a text file (default: stdin)")
	return cmd
}
