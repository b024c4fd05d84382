package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/darkcollective/relalg/pkg/parenthetical"
	"github.com/darkcollective/relalg/pkg/registry"
	"github.com/darkcollective/relalg/pkg/sqlparse"
)

// NewRenderCommand creates the render command, which prints a query's
// parenthetical-notation plan, wrapped to the terminal width when the
// output is a terminal wide enough to benefit from it.
func NewRenderCommand() *cobra.Command {
	var showFunctions bool

	cmd := &cobra.Command{
		Use:   "render <sql>",
		Short: "Render a SQL query as a parenthetical-notation plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := sqlparse.Parse(args[0])
			if err != nil {
				return err
			}

			rendered := parenthetical.Print(query.Root)
			fmt.Fprintln(cmd.OutOrStdout(), wrapToTerminal(rendered))

			if showFunctions {
				printFunctionRegistry(cmd)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFunctions, "show-functions", false, "also print the function registry")
	return cmd
}

// wrapToTerminal breaks s onto multiple lines at comma boundaries when
// stdout is a terminal narrower than len(s), so a long plan doesn't
// overrun the window. Non-terminal output (pipes, redirects) is left
// unwrapped.
func wrapToTerminal(s string) string {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return s
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 || len(s) <= width {
		return s
	}

	var out []byte
	col := 0
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		out = append(out, c)
		col++
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
		if c == ',' && col >= width-2 {
			out = append(out, '\n')
			for j := 0; j < depth; j++ {
				out = append(out, ' ', ' ')
			}
			col = 0
		}
	}
	return string(out)
}

// printFunctionRegistry renders every registered function name next to
// its category, one row per name in alphabetical order of name, using
// go-pretty to match the teacher's tabular CLI output.
func printFunctionRegistry(cmd *cobra.Command) {
	names := registry.Names()
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Function", "Category"})
	for _, name := range sorted {
		t.AppendRow(table.Row{name, registry.CategoryOf(name)})
	}
	t.Render()
}
