// Package adapter provides a unified interface for LLM providers.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider name constants.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// ErrDegenerate marks a reply too short to be worth showing. Callers
// treat it like any backend failure and fall back.
var ErrDegenerate = errors.New("adapter: degenerate response")

// Request holds the parameters for one completion call.
type Request struct {
	Prompt        string
	SystemMessage string
	MaxTokens     int
	Temperature   float64
}

// ModelInfo describes the configured model.
type ModelInfo struct {
	Name             string
	Provider         string
	MaxContextWindow int
}

// Generator is the common interface all provider adapters implement.
type Generator interface {
	// Generate sends a prompt and returns the complete reply text.
	Generate(ctx context.Context, req Request) (string, error)

	// Info returns metadata about the adapter/model.
	Info() ModelInfo
}

// New constructs the Generator for the named provider.
//
//   - provider: "claude", "openai", "ollama"
//   - apiKey: provider API key (empty = read from env in the concrete adapter)
//   - host: base URL for the Ollama server (used only when provider == "ollama")
//   - model: model name override (empty = provider default)
func New(provider, apiKey, host, model string) (Generator, error) {
	switch provider {
	case ProviderClaude:
		return NewClaude(apiKey, model), nil
	case ProviderOpenAI:
		return NewOpenAI(apiKey, model), nil
	case ProviderOllama:
		if host == "" {
			host = "http://localhost:11434"
		}
		if model == "" {
			model = "llama3.2"
		}
		return NewOllama(host, model), nil
	default:
		return nil, fmt.Errorf("adapter: unknown provider %q; valid providers: claude, openai, ollama", provider)
	}
}

// finish trims the reply and rejects ones too short to mean anything.
func finish(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < 5 {
		return "", fmt.Errorf("%w: %q", ErrDegenerate, text)
	}
	return text, nil
}
