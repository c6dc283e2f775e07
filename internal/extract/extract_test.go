package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bukkenlabs/bukken/internal/providers"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"Price": null}`, `{"Price": null}`},
		{"leading and trailing fences", "```json\n{\"Price\": null}\n```", "{\"Price\": null}"},
		{"bare fences", "```\n{\"Price\": null}\n```", "{\"Price\": null}"},
		{"surrounding whitespace", "  \n{\"Price\": null}\n  ", `{"Price": null}`},
		{"fences in the middle are removed too", "{\"a\": \"x```json y\"}", `{"a": "x y"}`},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripFences(tt.in)
			if strings.TrimSpace(got) != strings.TrimSpace(tt.want) {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripFencesIdempotent(t *testing.T) {
	in := "```json\n{\"Price\": \"30,000,000 yen\"}\n```"
	once := StripFences(in)
	twice := StripFences(once)
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestBuildPrompt(t *testing.T) {
	doc := "価格: 3000万円\n所在地: 東京都渋谷区"
	got := BuildPrompt(doc)

	if !strings.HasPrefix(got, Prompt) {
		t.Error("prompt must lead the payload")
	}
	if !strings.HasSuffix(got, "\n\nDocument Text:\n"+doc) {
		t.Error("document text must follow the separator")
	}
	for _, key := range FieldKeys {
		if !strings.Contains(Prompt, key) {
			t.Errorf("prompt missing field key %q", key)
		}
	}
}

func TestService_Extract(t *testing.T) {
	fullResult := func() string {
		m := map[string]any{}
		for _, k := range FieldKeys {
			m[k] = nil
		}
		m["Price"] = "30,000,000 yen"
		b, _ := json.Marshal(m)
		return string(b)
	}()

	t.Run("fenced JSON reply is stripped and parsed", func(t *testing.T) {
		mock := providers.NewMockLLM("```json\n" + fullResult + "\n```")
		svc := NewService(Config{})

		raw, err := svc.Extract(context.Background(), mock, "価格: 3000万円")
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("result is not valid JSON: %v", err)
		}
		if got["Price"] != "30,000,000 yen" {
			t.Errorf("Price = %v", got["Price"])
		}
		if v, ok := got["Address"]; !ok || v != nil {
			t.Errorf("Address = %v, want null", v)
		}
	})

	t.Run("prompt carries instructions and document text", func(t *testing.T) {
		mock := providers.NewMockLLM(fullResult)
		svc := NewService(Config{})

		if _, err := svc.Extract(context.Background(), mock, "所在地: 東京都渋谷区"); err != nil {
			t.Fatalf("Extract() error = %v", err)
		}

		req := mock.LastRequest()
		if req == nil {
			t.Fatal("no request recorded")
		}
		if !strings.Contains(req.Prompt, "real estate data extraction expert") {
			t.Error("instruction block missing from prompt")
		}
		if !strings.Contains(req.Prompt, "所在地: 東京都渋谷区") {
			t.Error("document text missing from prompt")
		}
	})

	t.Run("non-JSON reply is ErrNotJSON", func(t *testing.T) {
		mock := providers.NewMockLLM("Sorry, I cannot process this.")
		svc := NewService(Config{})

		_, err := svc.Extract(context.Background(), mock, "text")
		if !errors.Is(err, ErrNotJSON) {
			t.Errorf("err = %v, want ErrNotJSON", err)
		}
	})

	t.Run("provider failure is not ErrNotJSON", func(t *testing.T) {
		mock := &providers.MockLLM{Err: errors.New("connection refused")}
		svc := NewService(Config{})

		_, err := svc.Extract(context.Background(), mock, "text")
		if err == nil {
			t.Fatal("expected error")
		}
		if errors.Is(err, ErrNotJSON) {
			t.Error("provider failures must stay distinct from format errors")
		}
	})

	t.Run("validation off accepts partial objects", func(t *testing.T) {
		mock := providers.NewMockLLM(`{"Price": "30,000,000 yen"}`)
		svc := NewService(Config{})

		if _, err := svc.Extract(context.Background(), mock, "text"); err != nil {
			t.Errorf("Extract() error = %v", err)
		}
	})

	t.Run("validation on rejects partial objects", func(t *testing.T) {
		mock := providers.NewMockLLM(`{"Price": "30,000,000 yen"}`)
		svc := NewService(Config{ValidateResult: true})

		_, err := svc.Extract(context.Background(), mock, "text")
		if !errors.Is(err, ErrNotJSON) {
			t.Errorf("err = %v, want ErrNotJSON", err)
		}
	})

	t.Run("validation on accepts complete objects", func(t *testing.T) {
		mock := providers.NewMockLLM(fullResult)
		svc := NewService(Config{ValidateResult: true})

		if _, err := svc.Extract(context.Background(), mock, "text"); err != nil {
			t.Errorf("Extract() error = %v", err)
		}
	})
}

func TestValidateResult(t *testing.T) {
	t.Run("all keys present", func(t *testing.T) {
		m := map[string]any{}
		for _, k := range FieldKeys {
			m[k] = nil
		}
		raw, _ := json.Marshal(m)
		if err := ValidateResult(raw); err != nil {
			t.Errorf("ValidateResult() error = %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		m := map[string]any{}
		for _, k := range FieldKeys[:len(FieldKeys)-1] {
			m[k] = "x"
		}
		raw, _ := json.Marshal(m)
		if err := ValidateResult(raw); err == nil {
			t.Error("expected error for missing key")
		}
	})

	t.Run("non-object", func(t *testing.T) {
		if err := ValidateResult(json.RawMessage(`["a"]`)); err == nil {
			t.Error("expected error for array result")
		}
	})
}
