package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	var (
		student string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the learner profile built from conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			p := env.memory.Profile()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			fmt.Printf("\nProfile: %s\n\n", p.StudentID)
			fmt.Printf("Conversations:  %d\n", p.TotalConversations)
			if p.TotalConversations == 0 {
				fmt.Println("\nNo history yet. Start with: studycoach chat \"your question\"")
				return nil
			}

			fmt.Printf("Topics:         %s\n", strings.Join(p.TopicsStudied, ", "))
			fmt.Printf("Understanding:  %.1f/10 average\n", p.AverageUnderstanding)
			fmt.Printf("Learning style: %s\n", p.LearningStyle)

			if p.StudyPatterns.Known {
				sp := p.StudyPatterns
				fmt.Printf("\nStudy patterns:\n")
				fmt.Printf("  Preferred time: %s\n", sp.PreferredStudyTime)
				fmt.Printf("  Frequency:      %s (avg %.1fh between sessions)\n", sp.Frequency, sp.AverageGapHours)
				fmt.Printf("  Study days:     %d\n", sp.TotalStudyDays)
			}

			if len(p.EmotionDistribution) > 0 {
				fmt.Printf("\nEmotional states seen:\n")
				for state, n := range p.EmotionDistribution {
					fmt.Printf("  %-15s %d\n", state, n)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")

	return cmd
}
