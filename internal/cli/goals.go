package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycoach/studycoach/internal/ledger"
)

func newGoalsCmd() *cobra.Command {
	var (
		student string
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List goals and unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			goals := env.ledger.Goals()
			if len(goals) == 0 {
				fmt.Println("No goals yet. Try: studycoach coach \"my goal is ...\"")
				return nil
			}

			fmt.Printf("\nGoals for %s:\n\n", env.student)
			for _, g := range goals {
				if g.Status == ledger.StatusCompleted && !all {
					continue
				}
				marker := " "
				if g.Status == ledger.StatusCompleted {
					marker = "✓"
				}
				fmt.Printf("  [%s] #%d %s — %.1f/10\n", marker, g.ID, g.Title, g.Progress)
				if !g.TargetDate.IsZero() && g.Status != ledger.StatusCompleted {
					fmt.Printf("        target %s\n", g.TargetDate.Format("2006-01-02"))
				}
			}

			achievements := env.ledger.Achievements()
			if len(achievements) > 0 {
				points := 0
				for _, a := range achievements {
					points += a.Points
				}
				fmt.Printf("\nAchievements (%d points):\n\n", points)
				for _, a := range achievements {
					fmt.Printf("  %s %s — %s\n", a.Icon, a.Title, a.Description)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include completed goals")

	cmd.AddCommand(newSmartCmd())

	return cmd
}

func newSmartCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "smart <description>",
		Short: "Break a goal into a SMART plan",
		Long: `Scaffold a Specific/Measurable/Achievable/Relevant/Time-bound
breakdown for a goal, with action steps and success metrics.

Example:
  studycoach goals smart "Go generics" --days 14`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sg := ledger.NewSMARTGoal(strings.Join(args, " "), days)

			fmt.Printf("\nSMART breakdown for %q\n\n", sg.OriginalDescription)
			fmt.Printf("Specific:   %s\n", sg.Specific)
			fmt.Printf("Measurable: %s\n", sg.Measurable)
			fmt.Printf("Achievable: %s\n", sg.Achievable)
			fmt.Printf("Relevant:   %s\n", sg.Relevant)
			fmt.Printf("Time-bound: %s\n", sg.TimeBound)

			fmt.Println("\nAction steps:")
			for i, step := range sg.ActionSteps {
				fmt.Printf("  %d. %s\n", i+1, step)
			}
			fmt.Println("\nSuccess metrics:")
			for _, m := range sg.SuccessMetrics {
				fmt.Printf("  • %s\n", m)
			}
			fmt.Println()
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "timeline for the goal in days")

	return cmd
}
