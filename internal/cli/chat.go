package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studycoach/studycoach/internal/agent"
)

func newChatCmd() *cobra.Command {
	var (
		topic         string
		understanding float64
		model         string
		student       string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "chat <question>",
		Short: "Ask Alex, the tutor, a question",
		Long: `Send a question to the tutor. Alex reads your emotional state from the
question, adapts the teaching approach, and remembers the conversation.

Examples:
  studycoach chat "how does recursion work?"
  studycoach chat "I'm so confused by pointers" --topic pointers --understanding 3
  studycoach chat "explain goroutines" --model ollama`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

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

			reply, err := agent.NewTutor(deps).Teach(ctx, question, topic, understanding)
			if reply != "" {
				fmt.Println(reply)
			}
			if err != nil {
				return fmt.Errorf("save conversation: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "what the question is about (default: programming)")
	cmd.Flags().Float64VarP(&understanding, "understanding", "u", 5.0, "self-rated understanding, 0-10")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model provider override: claude, openai, ollama")
	cmd.Flags().StringVarP(&student, "student", "s", "", "student profile to use")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log state detection and fallbacks to stderr")

	return cmd
}
