package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("BUKKEN_TEST_KEY", "secret-value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain string untouched", "literal-key", "literal-key"},
		{"empty string", "", ""},
		{"full substitution", "${BUKKEN_TEST_KEY}", "secret-value"},
		{"embedded substitution", "Bearer ${BUKKEN_TEST_KEY}", "Bearer secret-value"},
		{"unset variable resolves empty", "${BUKKEN_TEST_UNSET}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEnvVars(tt.input); got != tt.want {
				t.Errorf("ResolveEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.LLMProvider != "gemini" {
		t.Errorf("default provider = %q", cfg.Defaults.LLMProvider)
	}

	gemini, ok := cfg.GetLLMProvider("gemini")
	if !ok {
		t.Fatal("gemini provider missing from defaults")
	}
	if !gemini.Enabled {
		t.Error("gemini should be enabled by default")
	}
	if gemini.Model != "gemini-2.5-flash" {
		t.Errorf("gemini model = %q", gemini.Model)
	}

	openai, ok := cfg.GetLLMProvider("openai")
	if !ok {
		t.Fatal("openai provider missing from defaults")
	}
	if openai.Enabled {
		t.Error("openai should be disabled by default")
	}

	if cfg.Extract.MaxUploadMB != 32 {
		t.Errorf("max upload = %d", cfg.Extract.MaxUploadMB)
	}
	if cfg.Extract.ValidateResult {
		t.Error("result validation should be off by default")
	}
}

func TestValidateCredentials(t *testing.T) {
	t.Run("resolved key passes", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		cfg := DefaultConfig()
		if err := cfg.ValidateCredentials(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("no resolvable key fails", func(t *testing.T) {
		cfg := DefaultConfig()
		for name, p := range cfg.LLMProviders {
			p.APIKey = "${BUKKEN_TEST_UNSET}"
			cfg.LLMProviders[name] = p
		}
		if err := cfg.ValidateCredentials(); err == nil {
			t.Error("expected credential error")
		}
	})

	t.Run("unknown default provider fails", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "test-key")
		cfg := DefaultConfig()
		cfg.Defaults.LLMProvider = "missing"
		if err := cfg.ValidateCredentials(); err == nil {
			t.Error("expected error for unconfigured default")
		}
	})

	t.Run("default without credential fails even when another provider has one", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "test-key")
		cfg := DefaultConfig()
		openai := cfg.LLMProviders["openai"]
		openai.Enabled = true
		cfg.LLMProviders["openai"] = openai
		gemini := cfg.LLMProviders["gemini"]
		gemini.APIKey = "${BUKKEN_TEST_UNSET}"
		cfg.LLMProviders["gemini"] = gemini

		if err := cfg.ValidateCredentials(); err == nil {
			t.Error("expected error for default provider without key")
		}
	})
}

func TestToProviderRegistryConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "resolved-key")

	cfg := DefaultConfig()
	regCfg := cfg.ToProviderRegistryConfig()

	gemini, ok := regCfg.LLMProviders["gemini"]
	if !ok {
		t.Fatal("gemini missing from registry config")
	}
	if gemini.APIKey != "resolved-key" {
		t.Errorf("api key = %q, want resolved value", gemini.APIKey)
	}
	if gemini.Type != "gemini" {
		t.Errorf("type = %q", gemini.Type)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written config: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("written config is not valid YAML: %v", err)
	}
	if cfg.Defaults.LLMProvider != "gemini" {
		t.Errorf("round-tripped default provider = %q", cfg.Defaults.LLMProvider)
	}

	// A second call must not clobber an existing file.
	if err := os.WriteFile(path, []byte("defaults:\n  llm_provider: custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault on existing file: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "defaults:\n  llm_provider: custom\n" {
		t.Error("WriteDefault overwrote an existing file")
	}
}

func TestNewManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  host: 0.0.0.0
  port: "9090"
defaults:
  llm_provider: gemini
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	cfg := cm.Get()
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q", cfg.Server.Host)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	// Values absent from the file fall back to defaults.
	if _, ok := cfg.GetLLMProvider("gemini"); !ok {
		t.Error("default gemini provider missing after load")
	}
}
