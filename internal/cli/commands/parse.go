package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/pkg/plan"
	"github.com/darkcollective/relalg/pkg/sqlparse"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <sql>",
		Short: "Parse a SQL query into a relational-algebra plan tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := sqlparse.Parse(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "parenthetical":
				fmt.Fprintln(cmd.OutOrStdout(), plan.ToParenthetical(query.Root))
			case "sql":
				fmt.Fprintln(cmd.OutOrStdout(), query.ToSQL())
			case "table":
				renderPlanTable(cmd, query.Root)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), query.ToTreeString())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "tree", "output format: tree, parenthetical, sql, table")
	return cmd
}

// renderPlanTable prints one row per plan node, depth-first, using
// go-pretty, grounded on the teacher's query_render.go table rendering.
func renderPlanTable(cmd *cobra.Command, root plan.Node) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Depth", "Operator"})

	var walk func(n plan.Node, depth int)
	walk = func(n plan.Node, depth int) {
		t.AppendRow(table.Row{depth, plan.ToParenthetical(n)})
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	t.Render()
}
