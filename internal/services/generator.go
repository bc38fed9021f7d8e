package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/adititiwari16/Recruitbotai/internal/config"
)

// Generator is the text-generation collaborator consumed by the interview
// and query services. Implementations send a fully-formed natural-language
// prompt and return the raw generated text; callers are responsible for
// parsing it defensively.
type Generator interface {
	Generate(ctx context.Context, prompt string, extra string) (string, error)
}

// NewGenerator builds the configured backend.
func NewGenerator(ctx context.Context, cfg config.GeneratorConfig, logger *zap.Logger) (Generator, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.Timeout, logger), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown generator provider: %q", cfg.Provider)
	}
}
