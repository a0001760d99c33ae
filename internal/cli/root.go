// Package cli defines the Cobra command tree for the studycoach CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "studycoach",
	Short: "AI study companion with tutoring, session planning, and goal coaching",
	Long: `Studycoach is a personal learning assistant built on three coaches:

  Alex, a patient tutor that adapts explanations to how you feel;
  Sam, a time-management coach that builds study schedules around your energy;
  Jordan, a goal coach that tracks progress and unlocks achievements.

Every conversation is remembered, so advice improves as the history grows.
Run 'studycoach setup' once to configure a model, then start with
'studycoach chat "your question"'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newSetupCmd(),
		newChatCmd(),
		newPlanCmd(),
		newCoachCmd(),
		newGoalsCmd(),
		newProfileCmd(),
		newInsightsCmd(),
		newReportCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("studycoach %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
