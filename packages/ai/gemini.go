package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"repo-radar/packages/config"
)

// GeminiProvider generates content with the Gemini API. A fresh client is
// created per call and closed when the call returns.
type GeminiProvider struct {
	apiKey string
	cfg    config.AIConfig
}

func NewGeminiProvider(apiKey string, cfg config.AIConfig) *GeminiProvider {
	return &GeminiProvider{apiKey: apiKey, cfg: cfg}
}

func (p *GeminiProvider) Name() string {
	return "GEMINI"
}

// Ping sends a minimal generation request to verify the key.
func (p *GeminiProvider) Ping(ctx context.Context) error {
	_, err := p.Generate(ctx, pingInstruction, "ping", 0)
	return err
}

func (p *GeminiProvider) Generate(ctx context.Context, systemInstruction, prompt string, temperature float32) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.cfg.GeminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	model.SetTemperature(temperature)
	model.SetTopK(p.cfg.TopK)
	model.SetTopP(p.cfg.TopP)
	model.SetMaxOutputTokens(p.cfg.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
