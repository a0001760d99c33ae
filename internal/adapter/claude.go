package adapter

import (
	"context"
	"fmt"
	"os"

	anthropic "github.com/liushuangls/go-anthropic/v2"
)

// claudeGenerator implements Generator for Anthropic Claude.
type claudeGenerator struct {
	client *anthropic.Client
	model  string
}

// NewClaude creates a Claude generator. If apiKey is empty,
// ANTHROPIC_API_KEY is used.
func NewClaude(apiKey, model string) Generator {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if model == "" {
		model = "claude-sonnet-4-6"
	}
	return &claudeGenerator{
		client: anthropic.NewClient(apiKey),
		model:  model,
	}
}

func (c *claudeGenerator) Info() ModelInfo {
	return ModelInfo{
		Name:             c.model,
		Provider:         ProviderClaude,
		MaxContextWindow: 200000,
	}
}

func (c *claudeGenerator) Generate(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 512
	}

	temperature := float32(req.Temperature)

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(req.Prompt)},
			},
		},
		MaxTokens:   maxTokens,
		System:      req.SystemMessage,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("claude generate: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("claude generate: empty response")
	}
	return finish(resp.Content[0].GetText())
}
