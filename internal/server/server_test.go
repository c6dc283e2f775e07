package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/bukkenlabs/bukken/internal/config"
	"github.com/bukkenlabs/bukken/internal/testutil"
)

func writeTestConfig(t *testing.T, path string, apiKeyRef string) {
	t.Helper()
	content := `llm_providers:
  gemini:
    type: gemini
    model: gemini-2.5-flash
    api_key: ` + apiKeyRef + `
    enabled: true
defaults:
  llm_provider: gemini
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestServerLifecycle(t *testing.T) {
	t.Setenv("BUKKEN_TEST_GEMINI_KEY", "test-key")

	sc := testutil.NewServerConfig(t)
	writeTestConfig(t, sc.ConfigFile, "${BUKKEN_TEST_GEMINI_KEY}")

	cfgMgr, err := config.NewManager(sc.ConfigFile)
	if err != nil {
		t.Fatalf("config manager: %v", err)
	}

	srv, err := New(Config{
		Host:          sc.Host,
		Port:          sc.Port,
		ConfigManager: cfgMgr,
		Logger:        sc.Logger,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	if err := testutil.WaitForServer(sc.URL(), 10*time.Second); err != nil {
		t.Fatalf("server never became healthy: %v", err)
	}
	if !srv.IsRunning() {
		t.Error("IsRunning() = false while serving")
	}

	t.Run("status reports the configured provider", func(t *testing.T) {
		resp, err := testutil.HTTPClient().Get(sc.URL() + "/status")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		var status struct {
			Providers struct {
				LLM     []string `json:"llm"`
				Default string   `json:"default"`
			} `json:"providers"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			t.Fatal(err)
		}
		if len(status.Providers.LLM) != 1 || status.Providers.LLM[0] != "gemini" {
			t.Errorf("providers = %v", status.Providers.LLM)
		}
		if status.Providers.Default != "gemini" {
			t.Errorf("default = %q", status.Providers.Default)
		}
	})

	t.Run("landing page is served", func(t *testing.T) {
		resp, err := testutil.HTTPClient().Get(sc.URL() + "/")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d", resp.StatusCode)
		}
	})

	cancel()
	if err := testutil.WaitForShutdown(done, 10*time.Second); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if srv.IsRunning() {
		t.Error("IsRunning() = true after shutdown")
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	sc := testutil.NewServerConfig(t)
	writeTestConfig(t, sc.ConfigFile, "${BUKKEN_TEST_UNSET_KEY}")

	cfgMgr, err := config.NewManager(sc.ConfigFile)
	if err != nil {
		t.Fatalf("config manager: %v", err)
	}

	if _, err := New(Config{ConfigManager: cfgMgr, Logger: sc.Logger}); err == nil {
		t.Fatal("New succeeded without any provider credential")
	}
}

func TestNewRequiresConfigManager(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New succeeded without a config manager")
	}
}
