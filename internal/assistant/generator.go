package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"womenhub/internal/config"
)

// ErrQuota marks a provider refusal caused by rate or billing limits.
var ErrQuota = errors.New("provider quota exceeded")

type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Generator is a hosted text-generation model bound to one model id.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
	Model() string
}

// ConfigError reports an assistant configuration that cannot work. It is
// returned at start so a misconfigured deployment fails instead of silently
// answering with fallback text.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("assistant config %s: %s", e.Field, e.Reason)
}

// NewGenerator builds the generator selected by cfg. It returns (nil, nil) when
// no provider key is configured, which puts the assistant in fallback mode.
func NewGenerator(ctx context.Context, cfg config.AI) (Generator, error) {
	provider := cfg.ResolvedProvider()
	if provider == "" {
		return nil, nil
	}

	switch provider {
	case "gemini", "openai":
	default:
		return nil, &ConfigError{Field: "AI_PROVIDER", Reason: fmt.Sprintf("unknown provider %q", provider)}
	}

	key := cfg.APIKey()
	if key == "" {
		return nil, nil
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, &ConfigError{Field: "AI_MODEL", Reason: "required when " + strings.ToUpper(provider) + "_API_KEY is set"}
	}

	if provider == "gemini" {
		return NewGemini(ctx, key, cfg.Model)
	}
	return NewOpenAI(key, cfg.OpenAIBaseURL, cfg.Model, cfg.Timeout), nil
}

func isQuota(err error) bool {
	if errors.Is(err, ErrQuota) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "insufficient_quota") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "429")
}
