package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"repo-radar/packages/config"
)

// Provider is one generative-AI backend able to produce a free-text
// completion for a system instruction and a prompt. Every call is a single
// attempt; callers decide what to do with a failure.
type Provider interface {
	Name() string
	Ping(ctx context.Context) error
	Generate(ctx context.Context, systemInstruction, prompt string, temperature float32) (string, error)
}

// pingInstruction is the system instruction used when probing a key.
const pingInstruction = "You must answer in English."

// Detect probes which provider an API key belongs to, trying GPT before
// Gemini, and returns the first one that answers a ping.
func Detect(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New("ai: empty API key")
	}

	cfg := config.GetConfig()
	candidates := []Provider{
		NewOpenAIProvider(apiKey, cfg.AI.OpenAIModel),
		NewGeminiProvider(apiKey, cfg.AI),
	}
	for _, provider := range candidates {
		if err := provider.Ping(ctx); err != nil {
			slog.Debug("Provider rejected key", "provider", provider.Name(), "error", err)
			continue
		}
		slog.Info("API key accepted", "provider", provider.Name())
		return provider, nil
	}
	return nil, errors.New("ai: API key not accepted by any provider")
}

// ProviderFor reconstructs the provider matching a previously detected
// provider name, without probing the key again.
func ProviderFor(name, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New("ai: empty API key")
	}
	cfg := config.GetConfig()
	switch name {
	case "GPT":
		return NewOpenAIProvider(apiKey, cfg.AI.OpenAIModel), nil
	case "GEMINI":
		return NewGeminiProvider(apiKey, cfg.AI), nil
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", name)
	}
}
