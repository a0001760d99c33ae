// Package config manages user-wide (~/.config/studycoach/config.toml)
// configuration for StudyCoach.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// GlobalConfig holds user-wide settings.
type GlobalConfig struct {
	DefaultModel string           `toml:"default_model"`
	StudentID    string           `toml:"student_id"`
	DataDir      string           `toml:"data_dir"`
	Keys         KeysConfig       `toml:"keys"`
	Ollama       OllamaConfig     `toml:"ollama"`
	Generation   GenerationConfig `toml:"generation"`
	Coach        CoachConfig      `toml:"coach"`
	Output       OutputConfig     `toml:"output"`
}

type KeysConfig struct {
	Anthropic string `toml:"anthropic"`
	OpenAI    string `toml:"openai"`
}

type OllamaConfig struct {
	Host            string `toml:"host"`
	CompletionModel string `toml:"completion_model"`
}

// GenerationConfig tunes the completion calls the agents make.
type GenerationConfig struct {
	Model              string  `toml:"model"`
	MaxTokens          int     `toml:"max_tokens"`
	Temperature        float64 `toml:"temperature"`
	TimeoutSeconds     int     `toml:"timeout_seconds"`
	ContextTokenBudget int     `toml:"context_token_budget"`
}

// CoachConfig tunes the goal-coaching behavior.
type CoachConfig struct {
	DedupeAchievements bool `toml:"dedupe_achievements"`
}

type OutputConfig struct {
	Color   bool `toml:"color"`
	Verbose bool `toml:"verbose"`
}

// DefaultGlobal returns sensible defaults.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		DefaultModel: "claude",
		StudentID:    "default_student",
		Ollama: OllamaConfig{
			Host:            "http://localhost:11434",
			CompletionModel: "llama3.2",
		},
		Generation: GenerationConfig{
			MaxTokens:          350,
			Temperature:        0.7,
			TimeoutSeconds:     60,
			ContextTokenBudget: 2048,
		},
		Coach: CoachConfig{
			DedupeAchievements: false,
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "studycoach", "config.toml"), nil
}

// DefaultDataDir returns where the database lives when data_dir is not
// configured.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "studycoach"), nil
}

// DBPath returns the path to the SQLite database for the effective
// config.
func (c GlobalConfig) DBPath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		var err error
		dir, err = DefaultDataDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, "studycoach.db"), nil
}

// Load loads the global config, applying defaults for any missing
// values. Env overrides apply on every path, including when no config
// file exists yet.
func Load() (GlobalConfig, error) {
	cfg := DefaultGlobal()

	path, err := GlobalConfigPath()
	if err != nil {
		applyEnv(&cfg)
		return cfg, nil // Defaults if we can't determine home dir.
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, nil // File doesn't exist yet — use defaults.
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config: load: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets env vars override config file API keys.
func applyEnv(cfg *GlobalConfig) {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Keys.Anthropic = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Keys.OpenAI = v
	}
	if v := os.Getenv("STUDYCOACH_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("STUDYCOACH_STUDENT"); v != "" {
		cfg.StudentID = v
	}
}

// Save writes the global config to disk.
func Save(cfg GlobalConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// APIKey returns the configured key for the named provider, or "".
func (c GlobalConfig) APIKey(provider string) string {
	switch provider {
	case "claude":
		return c.Keys.Anthropic
	case "openai":
		return c.Keys.OpenAI
	default:
		return ""
	}
}
