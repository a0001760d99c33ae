package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycoach/studycoach/internal/agent"
)

func newCoachCmd() *cobra.Command {
	var (
		goal     string
		progress float64
		model    string
		student  string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "coach <message>",
		Short: "Talk to Jordan, the goal coach",
		Long: `Tell Jordan about your goals. Saying "my goal is ..." creates a goal;
reporting progress with --goal and --progress updates it; completing a
goal unlocks achievements.

Examples:
  studycoach coach "my goal is to learn Go in two months"
  studycoach coach "I made progress today" --goal "learn Go" --progress 4
  studycoach coach "I completed my goal!" --goal "learn Go"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			deps, err := env.buildDeps(model, verbose)
			if err != nil {
				return err
			}

			// Only pass progress through when the flag was given; a zero
			// update is a valid reset.
			var progressUpdate *float64
			if cmd.Flags().Changed("progress") {
				progressUpdate = &progress
			}

			ctx, cancel := env.requestContext()
			defer cancel()

			reply, err := agent.NewGoal(deps).Coach(ctx, message, goal, progressUpdate)
			if reply != "" {
				fmt.Println(reply)
			}
			if err != nil {
				return fmt.Errorf("save progress: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "which goal the message refers to (title substring)")
	cmd.Flags().Float64VarP(&progress, "progress", "p", 0, "new progress value, 0-10")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model provider override: claude, openai, ollama")
	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log state detection and fallbacks to stderr")

	return cmd
}
