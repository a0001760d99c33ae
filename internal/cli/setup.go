package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studycoach/studycoach/internal/config"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive first-time configuration",
		Long:  "Configure the model provider, API keys, and your student profile.",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			fmt.Println("Welcome to Studycoach! Let's set up your study companion.")
			fmt.Println()

			cfg := config.DefaultGlobal()

			// Step 1: Choose model provider.
			fmt.Println("Which model should power your coaches?")
			fmt.Println("  [1] Claude (Anthropic)")
			fmt.Println("  [2] OpenAI (GPT-4o)")
			fmt.Println("  [3] Ollama (local)")
			fmt.Print("> ")

			choice := readLineBuf(reader)
			switch strings.TrimSpace(choice) {
			case "1":
				cfg.DefaultModel = "claude"
				if key := readSecret("Anthropic API key (or press Enter to set ANTHROPIC_API_KEY later): "); key != "" {
					cfg.Keys.Anthropic = key
				}
			case "2":
				cfg.DefaultModel = "openai"
				if key := readSecret("OpenAI API key (or press Enter to set OPENAI_API_KEY later): "); key != "" {
					cfg.Keys.OpenAI = key
				}
			case "3":
				cfg.DefaultModel = "ollama"
				fmt.Printf("Ollama host (press Enter for %s): ", cfg.Ollama.Host)
				if host := readLineBuf(reader); host != "" {
					cfg.Ollama.Host = host
				}
				fmt.Printf("Ollama model (press Enter for %s): ", cfg.Ollama.CompletionModel)
				if model := readLineBuf(reader); model != "" {
					cfg.Ollama.CompletionModel = model
				}
			default:
				fmt.Println("Unrecognized choice; defaulting to claude.")
				cfg.DefaultModel = "claude"
			}

			fmt.Println()

			// Step 2: Student profile name.
			fmt.Printf("What should I call you? (press Enter for %q): ", cfg.StudentID)
			if name := readLineBuf(reader); name != "" {
				cfg.StudentID = name
			}

			fmt.Println()

			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			path, _ := config.GlobalConfigPath()
			fmt.Printf("Configuration saved to %s\n", path)
			fmt.Println("Try: studycoach chat \"how does recursion work?\"")

			return nil
		},
	}
}

// readSecret reads a line without echoing when stdin is a terminal.
func readSecret(prompt string) string {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(b))
	}
	return readLineBuf(bufio.NewReader(os.Stdin))
}

// readLineBuf reads a trimmed line from a bufio.Reader.
func readLineBuf(r *bufio.Reader) string {
	line, _ := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
