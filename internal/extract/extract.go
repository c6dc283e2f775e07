// Package extract orchestrates LLM-backed field extraction from document text.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bukkenlabs/bukken/internal/providers"
)

// ErrNotJSON is returned when the model's reply is not a valid JSON value
// after fence stripping. Callers map it to an upstream-format error distinct
// from transport or provider failures.
var ErrNotJSON = errors.New("model did not return a parseable JSON object")

// Service runs the extraction pipeline: prompt assembly, one LLM call,
// fence stripping, JSON parse, and optional result validation.
type Service struct {
	logger   *slog.Logger
	validate bool
}

// Config holds Service configuration.
type Config struct {
	// Logger is the structured logger to use.
	Logger *slog.Logger
	// ValidateResult enables JSON Schema validation of the parsed object
	// against the sixteen expected keys. Off by default: the contract is to
	// return the model's object verbatim.
	ValidateResult bool
}

// NewService creates a new extraction service.
func NewService(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Service{
		logger:   cfg.Logger,
		validate: cfg.ValidateResult,
	}
}

// Extract sends the document text to the given LLM client and returns the
// parsed JSON value from its reply. documentText must be non-empty; the
// empty-text case is the caller's input error, not an orchestration concern.
func (s *Service) Extract(ctx context.Context, client providers.LLMClient, documentText string) (json.RawMessage, error) {
	result, err := client.Generate(ctx, &providers.GenerateRequest{
		Prompt: BuildPrompt(documentText),
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	s.logger.Info("model reply received",
		"provider", result.Provider,
		"model", result.ModelUsed,
		"total_tokens", result.TotalTokens,
		"duration", result.ExecutionTime,
	)

	cleaned := StripFences(result.Content)

	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	if s.validate {
		if err := ValidateResult(parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
		}
	}

	return parsed, nil
}

// StripFences trims the reply and removes every occurrence of the literal
// substrings "```json" and "```", anywhere in the string. This is a blind
// global removal for compatibility with the original service; a literal
// "```" inside a field value is corrupted the same way.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return s
}
