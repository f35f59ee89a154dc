package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvAIEndpoint, "")
	t.Setenv(EnvAIKey, "")

	cfg, err := Load(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != filepath.Join(dir, "data") {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.DefaultServings != 2 {
		t.Errorf("DefaultServings = %d, want 2", cfg.DefaultServings)
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Errorf("TickInterval = %s, want 200ms", cfg.TickInterval)
	}
	if cfg.LogLevel != "normal" {
		t.Errorf("LogLevel = %s, want normal", cfg.LogLevel)
	}
	if cfg.AIEnabled() {
		t.Error("AI should be disabled without endpoint and key")
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
data_dir = "/tmp/recipes"
ai_endpoint = "https://api.example.com/v1/chat/completions"
ai_model = "gpt-4o-mini"
default_servings = 4
tick_millis = 500
log_level = "verbose"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/recipes" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.AIModel != "gpt-4o-mini" {
		t.Errorf("AIModel = %s", cfg.AIModel)
	}
	if cfg.DefaultServings != 4 {
		t.Errorf("DefaultServings = %d", cfg.DefaultServings)
	}
	if cfg.TickInterval != 500*time.Millisecond {
		t.Errorf("TickInterval = %s", cfg.TickInterval)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("data_dir = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed TOML should fail to load")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`data_dir = "/from/file"`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(EnvDataDir, "/from/env")
	t.Setenv(EnvAIEndpoint, "https://api.example.com/v1/chat/completions")
	t.Setenv(EnvAIKey, "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("env should win over file: DataDir = %s", cfg.DataDir)
	}
	if !cfg.AIEnabled() {
		t.Error("endpoint + key from env should enable AI")
	}
}

func TestStringRedactsKey(t *testing.T) {
	cfg := &Config{AIKey: "sk-super-secret"}
	s := cfg.String()
	if strings.Contains(s, "sk-super-secret") {
		t.Fatalf("String leaked the key: %s", s)
	}
}
