package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a motivation and progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			report := env.ledger.Report()

			fmt.Printf("\nProgress report for %s\n\n", env.student)
			fmt.Printf("Goals:        %d total, %d active, %d completed\n",
				report.TotalGoals, len(report.ActiveGoals), len(report.CompletedGoals))
			fmt.Printf("Achievements: %d unlocked, %d points\n",
				report.AchievementsCount, report.TotalPoints)

			if len(report.RecentAchievements) > 0 {
				fmt.Println("\nRecent achievements:")
				for _, a := range report.RecentAchievements {
					fmt.Printf("  %s %s (+%d)\n", a.Icon, a.Title, a.Points)
				}
			}

			if len(report.MotivationInsights) > 0 {
				fmt.Println("\nInsights:")
				for _, s := range report.MotivationInsights {
					fmt.Printf("  • %s\n", s)
				}
			}

			if len(report.NextSteps) > 0 {
				fmt.Println("\nNext steps:")
				for _, s := range report.NextSteps {
					fmt.Printf("  • %s\n", s)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")

	return cmd
}
