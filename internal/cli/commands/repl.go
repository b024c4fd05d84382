package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/pkg/parenthetical"
	"github.com/darkcollective/relalg/pkg/sqlparse"
)

// NewReplCommand creates the repl command: an interactive SQL prompt
// that tokenizes/parses each line and prints its parenthetical plan,
// grounded on the teacher's query_repl.go readline-based loop.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive SQL parsing REPL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}

func runRepl(cmd *cobra.Command) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "relalg> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fmt.Fprintln(out, "relalg SQL REPL")
	fmt.Fprintln(out, "Type a SQL query, or .quit to exit")
	fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".quit" || line == ".exit" {
			return nil
		}

		query, err := sqlparse.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "parse error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, parenthetical.Print(query.Root))
	}
}
