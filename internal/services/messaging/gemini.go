package messaging

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when GeminiConfig.Model is empty
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig holds configuration for the Gemini generator
type GeminiConfig struct {
	APIKey string
	Model  string
}

// gemini implements Generator with the Gemini API
type gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator backed by Gemini
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*gemini, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &gemini{
		client: client,
		model:  model,
	}, nil
}

// Generate sends the prompt to the model and returns its text
func (g *gemini) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var genCfg *genai.GenerateContentConfig
	if input.Temperature != nil {
		genCfg = &genai.GenerateContentConfig{Temperature: input.Temperature}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(input.Prompt), genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return &GenerateOutput{Text: resp.Text()}, nil
}
