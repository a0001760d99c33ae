package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/studycoach/studycoach/internal/adapter"
	"github.com/studycoach/studycoach/internal/agent"
	"github.com/studycoach/studycoach/internal/config"
	"github.com/studycoach/studycoach/internal/db"
	"github.com/studycoach/studycoach/internal/ledger"
	"github.com/studycoach/studycoach/internal/memory"
)

// coachEnv bundles everything a command needs: config, the open database,
// and the learner's memory and ledger. Close it when done.
type coachEnv struct {
	cfg      config.GlobalConfig
	database *db.DB
	student  string
	memory   *memory.Memory
	ledger   *ledger.Ledger
}

func (e *coachEnv) Close() {
	if e.database != nil {
		e.database.Close()
	}
}

// openEnv loads configuration and the learner's persisted state. An empty
// student falls back to the configured student_id.
func openEnv(student string) (*coachEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if student == "" {
		student = cfg.StudentID
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	mem, err := memory.Open(memory.NewStore(database), student)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("load memory: %w", err)
	}
	led, err := ledger.Open(ledger.NewStore(database), student)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("load goals: %w", err)
	}
	led.SetDedupeAchievements(cfg.Coach.DedupeAchievements)

	return &coachEnv{
		cfg:      cfg,
		database: database,
		student:  student,
		memory:   mem,
		ledger:   led,
	}, nil
}

// buildDeps assembles agent dependencies around the configured model.
// modelOverride switches the provider for a single invocation.
func (e *coachEnv) buildDeps(modelOverride string, verbose bool) (agent.Deps, error) {
	provider := e.cfg.DefaultModel
	if modelOverride != "" {
		provider = modelOverride
	}

	model := e.cfg.Generation.Model
	if provider == adapter.ProviderOllama {
		model = e.cfg.Ollama.CompletionModel
	}

	gen, err := adapter.New(provider, e.cfg.APIKey(provider), e.cfg.Ollama.Host, model)
	if err != nil {
		return agent.Deps{}, fmt.Errorf("init model adapter: %w", err)
	}

	tokenizer, err := agent.NewTokenizer()
	if err != nil {
		return agent.Deps{}, fmt.Errorf("init tokenizer: %w", err)
	}

	return agent.Deps{
		Generator:     gen,
		Memory:        e.memory,
		Ledger:        e.ledger,
		Tokenizer:     tokenizer,
		ContextBudget: e.cfg.Generation.ContextTokenBudget,
		Verbose:       verbose || e.cfg.Output.Verbose,
	}, nil
}

// requestContext applies the configured generation timeout.
func (e *coachEnv) requestContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(e.cfg.Generation.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
