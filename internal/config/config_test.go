package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultGlobal(t *testing.T) {
	cfg := DefaultGlobal()

	if cfg.DefaultModel != "claude" {
		t.Errorf("default model: got %q, want %q", cfg.DefaultModel, "claude")
	}
	if cfg.StudentID != "default_student" {
		t.Errorf("student id: got %q", cfg.StudentID)
	}
	if cfg.Generation.MaxTokens != 350 {
		t.Errorf("max tokens: got %d, want 350", cfg.Generation.MaxTokens)
	}
	if cfg.Generation.Temperature != 0.7 {
		t.Errorf("temperature: got %f, want 0.7", cfg.Generation.Temperature)
	}
	if cfg.Generation.TimeoutSeconds != 60 {
		t.Errorf("timeout: got %d, want 60", cfg.Generation.TimeoutSeconds)
	}
	if cfg.Generation.ContextTokenBudget != 2048 {
		t.Errorf("context budget: got %d, want 2048", cfg.Generation.ContextTokenBudget)
	}
	if cfg.Coach.DedupeAchievements {
		t.Error("achievement dedupe should default to off")
	}
	if !cfg.Output.Color {
		t.Error("color should default to true")
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host: got %q", cfg.Ollama.Host)
	}
	if cfg.Ollama.CompletionModel != "llama3.2" {
		t.Errorf("ollama model: got %q", cfg.Ollama.CompletionModel)
	}
}

func TestDBPath_ExplicitDataDir(t *testing.T) {
	cfg := GlobalConfig{DataDir: "/var/lib/studycoach"}
	got, err := cfg.DBPath()
	if err != nil {
		t.Fatalf("DBPath: %v", err)
	}
	want := filepath.Join("/var/lib/studycoach", "studycoach.db")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDBPath_DefaultDataDir(t *testing.T) {
	got, err := GlobalConfig{}.DBPath()
	if err != nil {
		t.Fatalf("DBPath: %v", err)
	}
	if filepath.Base(got) != "studycoach.db" {
		t.Errorf("got %q", got)
	}
	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}
	if filepath.Dir(got) != dir {
		t.Errorf("dir = %q, want %q", filepath.Dir(got), dir)
	}
}

func TestRoundTripTOML(t *testing.T) {
	cfg := DefaultGlobal()
	cfg.Keys.Anthropic = "sk-test"
	cfg.DataDir = "/tmp/coach"
	cfg.Coach.DedupeAchievements = true

	path := filepath.Join(t.TempDir(), "config.toml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	var loaded GlobalConfig
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loaded.Keys.Anthropic != "sk-test" {
		t.Errorf("key: got %q", loaded.Keys.Anthropic)
	}
	if loaded.DataDir != "/tmp/coach" {
		t.Errorf("data dir: got %q", loaded.DataDir)
	}
	if !loaded.Coach.DedupeAchievements {
		t.Error("dedupe flag lost in round trip")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-anthropic")
	t.Setenv("STUDYCOACH_STUDENT", "alice")

	cfg := DefaultGlobal()
	cfg.Keys.Anthropic = "file-key"
	applyEnv(&cfg)

	if cfg.Keys.Anthropic != "env-anthropic" {
		t.Errorf("anthropic key: got %q, want env override", cfg.Keys.Anthropic)
	}
	if cfg.StudentID != "alice" {
		t.Errorf("student id: got %q, want alice", cfg.StudentID)
	}
}

func TestLoad_MissingFileStillAppliesEnv(t *testing.T) {
	// Point home at an empty dir so no config file is found.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDYCOACH_STUDENT", "env-student")
	t.Setenv("STUDYCOACH_DATA_DIR", "/tmp/env-coach")
	t.Setenv("OPENAI_API_KEY", "env-openai")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StudentID != "env-student" {
		t.Errorf("student id: got %q, want env override", cfg.StudentID)
	}
	if cfg.DataDir != "/tmp/env-coach" {
		t.Errorf("data dir: got %q, want env override", cfg.DataDir)
	}
	if cfg.Keys.OpenAI != "env-openai" {
		t.Errorf("openai key: got %q, want env override", cfg.Keys.OpenAI)
	}
	// Untouched fields keep their defaults.
	if cfg.DefaultModel != "claude" {
		t.Errorf("default model: got %q", cfg.DefaultModel)
	}
}

func TestAPIKey(t *testing.T) {
	cfg := GlobalConfig{Keys: KeysConfig{Anthropic: "a", OpenAI: "o"}}
	if cfg.APIKey("claude") != "a" {
		t.Error("claude key mismatch")
	}
	if cfg.APIKey("openai") != "o" {
		t.Error("openai key mismatch")
	}
	if cfg.APIKey("ollama") != "" {
		t.Error("ollama needs no key")
	}
}
