package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("PLANORA_TEST_KEY", "sk-test-123")

	path := writeConfig(t, `
provider:
  api_key: ${PLANORA_TEST_KEY}
  model: gpt-4o-mini
store:
  path: test.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.APIKey != "sk-test-123" {
		t.Errorf("expected expanded key, got %q", cfg.Provider.APIKey)
	}
	if cfg.Store.Path != "test.db" {
		t.Errorf("expected test.db, got %q", cfg.Store.Path)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
provider:
  api_key: k
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider.Model == "" {
		t.Error("expected default model")
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("expected default max_results 5, got %d", cfg.Search.MaxResults)
	}
	if cfg.Store.Path != "plans.db" {
		t.Errorf("expected default store path, got %q", cfg.Store.Path)
	}
	if cfg.Weather.BaseURL == "" {
		t.Error("expected default weather base url")
	}
}

func TestTimeoutDefaults(t *testing.T) {
	var tc TimeoutConfig
	if tc.Completion().Seconds() != 30 {
		t.Errorf("expected 30s completion timeout, got %v", tc.Completion())
	}
	if tc.Search().Seconds() != 10 {
		t.Errorf("expected 10s search timeout, got %v", tc.Search())
	}
}
