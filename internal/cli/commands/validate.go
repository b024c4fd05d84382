package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darkcollective/relalg/pkg/schema"
	"github.com/darkcollective/relalg/pkg/sqlparse"
	"github.com/darkcollective/relalg/pkg/validator"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate <sql>",
		Short: "Validate a SQL query's plan against a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if schemaPath == "" {
				return fmt.Errorf("--schema is required")
			}

			data, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("failed to read schema file: %w", err)
			}
			sch, err := schema.LoadYAML(data)
			if err != nil {
				return err
			}

			query, err := sqlparse.Parse(args[0])
			if err != nil {
				return err
			}

			result := validator.Validate(query.Root, sch)

			w := cmd.OutOrStdout()
			for _, e := range result.Errors {
				fmt.Fprintf(w, "error: %s\n", e)
			}
			for _, warn := range result.Warnings {
				fmt.Fprintf(w, "warning: %s\n", warn)
			}
			if result.Valid() {
				fmt.Fprintln(w, "valid")
				return nil
			}
			return fmt.Errorf("query failed validation with %d error(s)", len(result.Errors))
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "path to a YAML schema file (required)")
	return cmd
}
