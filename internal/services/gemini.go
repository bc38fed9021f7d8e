package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
)

// GeminiClient is the hosted alternative to the local model runner.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: model,
	}, nil
}

// Generate implements Generator.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, extra string) (string, error) {
	fullPrompt := prompt
	if extra != "" {
		fullPrompt = extra + "\n\n" + prompt
	}

	temperature := float32(0.7)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(fullPrompt), cfg)
	if err != nil {
		return "", apperrors.Collaborator("failed to generate text", err)
	}
	if resp == nil {
		return "", apperrors.Collaborator("no response generated", nil)
	}

	text := resp.Text()
	if text == "" {
		return "", apperrors.Collaborator("no text content in response", nil)
	}

	return text, nil
}
