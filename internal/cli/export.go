package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycoach/studycoach/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		format  string
		student string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a progress summary as markdown or JSON",
		Long: `Render the learner profile, topic analytics, and goal report in a
shareable format. Output is written to stdout — pipe it to a file.

Examples:
  studycoach export --format markdown > PROGRESS.md
  studycoach export --format json | jq .student`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			exporter, ok := export.Get(strings.ToLower(format))
			if !ok {
				return fmt.Errorf("unknown format %q; valid formats: %s",
					format, strings.Join(export.ValidFormats(), ", "))
			}

			output, err := exporter.Export(export.ExportData{
				Profile:  env.memory.Profile(),
				Insights: env.memory.OverallInsights(),
				Report:   env.ledger.Report(),
			})
			if err != nil {
				return fmt.Errorf("render export: %w", err)
			}

			fmt.Print(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "output format: markdown, json")
	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")

	return cmd
}
