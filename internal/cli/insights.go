package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInsightsCmd() *cobra.Command {
	var (
		student string
		topic   string
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Analyze learning progress across topics",
		Long: `Without flags, shows which topics are going well and which need work.
With --topic, drills into one topic: understanding trend, recent
emotional states, and study recommendations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			if topic != "" {
				ti, ok := env.memory.TopicInsights(topic)
				if !ok {
					return fmt.Errorf("no sessions recorded for topic %q", topic)
				}

				fmt.Printf("\nTopic: %s\n\n", ti.Topic)
				fmt.Printf("Sessions:       %d\n", ti.TotalSessions)
				fmt.Printf("Understanding:  %.1f/10, %s\n", ti.AverageUnderstanding, ti.Trend)
				if len(ti.RecentEmotions) > 0 {
					states := make([]string, len(ti.RecentEmotions))
					for i, s := range ti.RecentEmotions {
						states[i] = string(s)
					}
					fmt.Printf("Recent states:  %s\n", strings.Join(states, ", "))
				}
				if ti.NeedsSupport {
					fmt.Println("\nThis topic has been rough lately — be kind to yourself.")
				}
				if len(ti.Recommendations) > 0 {
					fmt.Println("\nRecommendations:")
					for _, r := range ti.Recommendations {
						fmt.Printf("  • %s\n", r)
					}
				}
				fmt.Println()
				return nil
			}

			oi := env.memory.OverallInsights()
			if oi.TotalSessions == 0 {
				fmt.Println("No history yet. Start with: studycoach chat \"your question\"")
				return nil
			}

			fmt.Printf("\nLearning overview for %s\n\n", env.student)
			fmt.Printf("Topics studied: %d across %d sessions (%s)\n",
				oi.TotalTopics, oi.TotalSessions, oi.OverallTrend)
			if len(oi.StrongTopics) > 0 {
				fmt.Printf("Going well:     %s\n", strings.Join(oi.StrongTopics, ", "))
			}
			if len(oi.StrugglingTopics) > 0 {
				fmt.Printf("Needs work:     %s\n", strings.Join(oi.StrugglingTopics, ", "))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().StringVarP(&topic, "topic", "t", "", "drill into one topic")

	return cmd
}
