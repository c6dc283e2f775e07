package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIClient_Generate(t *testing.T) {
	t.Run("successful generation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected authorization: %s", auth)
			}

			var req map[string]any
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
			if req["model"] != "gpt-4o-mini" {
				t.Errorf("unexpected model: %v", req["model"])
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "chatcmpl-test",
				"object": "chat.completion",
				"model": "gpt-4o-mini",
				"choices": [{
					"index": 0,
					"message": {"role": "assistant", "content": "{\"Price\": null}"},
					"finish_reason": "stop"
				}],
				"usage": {"prompt_tokens": 90, "completion_tokens": 10, "total_tokens": 100}
			}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{
			APIKey:  "test-key",
			BaseURL: server.URL,
		})

		result, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "document text"})
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if result.Content != `{"Price": null}` {
			t.Errorf("unexpected content: %q", result.Content)
		}
		if result.TotalTokens != 100 {
			t.Errorf("TotalTokens = %d, want 100", result.TotalTokens)
		}
	})

	t.Run("no choices is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "x", "object": "chat.completion", "model": "gpt-4o-mini", "choices": []}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(OpenAIConfig{APIKey: "k", BaseURL: server.URL})
		_, err := client.Generate(context.Background(), &GenerateRequest{Prompt: "text"})
		if err == nil {
			t.Fatal("expected error for empty choices")
		}
	})
}
