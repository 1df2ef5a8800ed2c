package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestMergeConfig(t *testing.T) {
	t.Run("local values take precedence", func(t *testing.T) {
		global := &Config{
			DefaultFormat: "table",
			BaseURL:       "https://global.example.com/api/v3/",
			DatabasePath:  "/global/users.db",
		}
		local := &Config{
			DefaultFormat: "json",
		}

		merged := mergeConfig(global, local)

		if merged.DefaultFormat != "json" {
			t.Errorf("DefaultFormat = %q, want %q", merged.DefaultFormat, "json")
		}
		if merged.BaseURL != "https://global.example.com/api/v3/" {
			t.Errorf("BaseURL = %q, unset local value should preserve global", merged.BaseURL)
		}
		if merged.DatabasePath != "/global/users.db" {
			t.Errorf("DatabasePath = %q, unset local value should preserve global", merged.DatabasePath)
		}
	})

	t.Run("empty local preserves all global values", func(t *testing.T) {
		global := &Config{DefaultFormat: "json", BaseURL: "https://g/"}
		merged := mergeConfig(global, &Config{})

		if merged.DefaultFormat != "json" || merged.BaseURL != "https://g/" {
			t.Errorf("merged = %+v, want global values preserved", merged)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "table")
	}
}

func TestToYAML(t *testing.T) {
	cfg := &Config{DefaultFormat: "json", BaseURL: "https://ghe.example.com/api/v3/"}

	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded Config
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("ToYAML() output is not valid YAML: %v", err)
	}
	if decoded.DefaultFormat != "json" || decoded.BaseURL != "https://ghe.example.com/api/v3/" {
		t.Errorf("round-tripped config = %+v", decoded)
	}
}

func TestMinimalConfigParses(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(MinimalConfig()), &cfg); err != nil {
		t.Fatalf("MinimalConfig() is not valid YAML: %v", err)
	}
	if cfg.DefaultFormat != "table" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "table")
	}
}

func TestGetGitHubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")

	cfg := &Config{}
	if got := cfg.GetGitHubToken(); got != "test-token" {
		t.Errorf("GetGitHubToken() = %q, want %q", got, "test-token")
	}
}

func TestConfigPathLayout(t *testing.T) {
	if LocalConfigPath() != ".ghfind.yaml" {
		t.Errorf("LocalConfigPath() = %q", LocalConfigPath())
	}
	if !strings.HasSuffix(ConfigPath(), "config.yaml") {
		t.Errorf("ConfigPath() = %q, want a config.yaml path", ConfigPath())
	}
}
