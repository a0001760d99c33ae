package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew_ValidProviders(t *testing.T) {
	tests := []struct {
		provider string
	}{
		{ProviderClaude},
		{ProviderOpenAI},
		{ProviderOllama},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			g, err := New(tt.provider, "test-key", "", "")
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.provider, err)
			}
			if g == nil {
				t.Fatalf("New(%q) returned nil generator", tt.provider)
			}
			info := g.Info()
			if info.Provider != tt.provider {
				t.Errorf("Info().Provider = %q, want %q", info.Provider, tt.provider)
			}
		})
	}
}

func TestNew_InvalidProvider(t *testing.T) {
	_, err := New("invalid", "key", "", "")
	if err == nil {
		t.Error("expected error for invalid provider")
	}
}

func TestNew_OllamaDefaults(t *testing.T) {
	g, err := New(ProviderOllama, "", "", "")
	if err != nil {
		t.Fatalf("New(ollama) error: %v", err)
	}
	info := g.Info()
	if info.Name != "llama3.2" {
		t.Errorf("default model = %q", info.Name)
	}
}

func TestNew_ModelOverride(t *testing.T) {
	g, _ := New(ProviderClaude, "key", "", "claude-haiku-4-5")
	if got := g.Info().Name; got != "claude-haiku-4-5" {
		t.Errorf("model = %q, want override", got)
	}
}

func TestFinish(t *testing.T) {
	got, err := finish("  a thoughtful reply  ")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if got != "a thoughtful reply" {
		t.Errorf("finish = %q", got)
	}
}

func TestFinish_RejectsDegenerate(t *testing.T) {
	for _, text := range []string{"", "   ", "ok", " hi \n"} {
		if _, err := finish(text); !errors.Is(err, ErrDegenerate) {
			t.Errorf("finish(%q) err = %v, want ErrDegenerate", text, err)
		}
	}
}

func TestOllamaGenerate(t *testing.T) {
	var gotReq ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaChatMessage{Role: "assistant", Content: "Here is a study plan."},
			Done:    true,
		})
	}))
	defer srv.Close()

	g := NewOllama(srv.URL, "llama3.2")
	got, err := g.Generate(context.Background(), Request{
		Prompt:        "help me plan",
		SystemMessage: "You are Sam.",
		MaxTokens:     350,
		Temperature:   0.7,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Here is a study plan." {
		t.Errorf("response = %q", got)
	}

	if gotReq.Stream {
		t.Error("request should not stream")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if gotReq.Options["num_predict"] != float64(350) {
		t.Errorf("num_predict = %v", gotReq.Options["num_predict"])
	}
}

func TestOllamaGenerate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewOllama(srv.URL, "llama3.2")
	if _, err := g.Generate(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Error("expected error on 500")
	}
}

func TestOllamaGenerate_DegenerateReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaChatMessage{Role: "assistant", Content: "ok"},
			Done:    true,
		})
	}))
	defer srv.Close()

	g := NewOllama(srv.URL, "llama3.2")
	if _, err := g.Generate(context.Background(), Request{Prompt: "hi"}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}
