// Package agent wires classification, strategy selection, planning, the
// goal ledger, and conversation memory into three coaching personas:
// Alex the tutor, Sam the session manager, and Jordan the goal coach.
//
// Every entry point returns usable text even when the generation backend
// is down; the returned error is non-nil only when persisting the turn
// failed.
package agent

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/studycoach/studycoach/internal/adapter"
	"github.com/studycoach/studycoach/internal/ledger"
	"github.com/studycoach/studycoach/internal/memory"
)

// Agent type tags recorded with every conversation turn.
const (
	TypeTutor   = "tutor"
	TypeSession = "session_manager"
	TypeGoal    = "goal_coach"
)

// Deps carries the collaborators an agent needs. One Deps value is built
// per learner at startup and handed to each constructor; nothing here is
// ambient or cached process-wide.
type Deps struct {
	Generator adapter.Generator
	Memory    *memory.Memory
	Ledger    *ledger.Ledger // goal coach only
	Tokenizer *Tokenizer     // nil disables context truncation

	// ContextBudget caps the token count of retrieved history embedded
	// in prompts. Zero means no cap.
	ContextBudget int
	Verbose       bool
}

func (d *Deps) logf(format string, args ...any) {
	if d.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// generate calls the backend once.
func (d *Deps) generate(ctx context.Context, prompt, system string, maxTokens int, temperature float64) (string, error) {
	if d.Generator == nil {
		return "", fmt.Errorf("agent: no generator configured")
	}
	return d.Generator.Generate(ctx, adapter.Request{
		Prompt:        prompt,
		SystemMessage: system,
		MaxTokens:     maxTokens,
		Temperature:   temperature,
	})
}

// truncateContext trims retrieved history to the configured token
// budget before it is embedded in a prompt.
func (d *Deps) truncateContext(text string) string {
	if d.Tokenizer == nil || d.ContextBudget <= 0 {
		return text
	}
	return d.Tokenizer.Truncate(text, d.ContextBudget)
}

// containsAnyFold reports whether text contains any of the phrases,
// case-insensitively. Used to detect whether the model already covered
// a sentiment before injecting it.
func containsAnyFold(text string, phrases ...string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
