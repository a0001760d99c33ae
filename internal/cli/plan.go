package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycoach/studycoach/internal/agent"
)

func newPlanCmd() *cobra.Command {
	var (
		topic   string
		minutes int
		model   string
		student string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "plan <request>",
		Short: "Ask Sam to plan a study session",
		Long: `Describe how you're doing and how much time you have. Sam picks a
session format that fits your energy (pomodoro, micro-sessions, deep
focus, or a power session) and lays out a block-by-block schedule.

Examples:
  studycoach plan "help me study for my exam" --topic calculus --minutes 90
  studycoach plan "I'm exhausted but need to get something done" --minutes 30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := strings.Join(args, " ")

			env, err := openEnv(student)
			if err != nil {
				return err
			}
			defer env.Close()

			deps, err := env.buildDeps(model, verbose)
			if err != nil {
				return err
			}

			ctx, cancel := env.requestContext()
			defer cancel()

			reply, err := agent.NewSession(deps).ManageTime(ctx, request, topic, minutes)
			if reply != "" {
				fmt.Println(reply)
			}
			if err != nil {
				return fmt.Errorf("save conversation: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "what you'll be studying (default: studying)")
	cmd.Flags().IntVarP(&minutes, "minutes", "d", 60, "minutes available for the session")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model provider override: claude, openai, ollama")
	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log state detection and fallbacks to stderr")

	return cmd
}
