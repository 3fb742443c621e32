package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: false,
		},
		{
			name:    "missing api keys",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Gemini: GeminiConfig{APIKeys: []string{"key-1"}},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.PollIntervalSeconds != 2 {
		t.Errorf("PollIntervalSeconds = %v, want 2", cfg.Gemini.PollIntervalSeconds)
	}
	if cfg.Gemini.PollTimeoutSeconds != 300 {
		t.Errorf("PollTimeoutSeconds = %v, want 300", cfg.Gemini.PollTimeoutSeconds)
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want data/output", cfg.Paths.Output)
	}
	if cfg.Watch.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %v, want 1", cfg.Watch.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  api_keys:
    - "test-key"
  model: "gemini-2.5-flash"
  poll_interval_seconds: 2
  poll_timeout_seconds: 300

paths:
  output: "data/output"
  temp: "data/temp"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 1 || cfg.Gemini.APIKeys[0] != "test-key" {
		t.Errorf("APIKeys = %v, want [test-key]", cfg.Gemini.APIKeys)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Temp = %v, want data/temp", cfg.Paths.Temp)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  api_keys:
    - "file-key"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEYS", "env-key-1, env-key-2")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Fatalf("APIKeys = %v, want two env keys", cfg.Gemini.APIKeys)
	}
	if cfg.Gemini.APIKeys[0] != "env-key-1" || cfg.Gemini.APIKeys[1] != "env-key-2" {
		t.Errorf("APIKeys = %v, want [env-key-1 env-key-2]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestPollDurations(t *testing.T) {
	g := GeminiConfig{PollIntervalSeconds: 2, PollTimeoutSeconds: 300}
	if g.PollInterval().Seconds() != 2 {
		t.Errorf("PollInterval = %v, want 2s", g.PollInterval())
	}
	if g.PollTimeout().Seconds() != 300 {
		t.Errorf("PollTimeout = %v, want 300s", g.PollTimeout())
	}
}
