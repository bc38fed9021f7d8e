package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/adititiwari16/Recruitbotai/internal/apperrors"
)

// OllamaClient talks to a local model runner over its HTTP generate API.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	TopK        int     `json:"top_k"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func NewOllamaClient(baseURL, model string, timeout time.Duration, logger *zap.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Generate implements Generator.
func (o *OllamaClient) Generate(ctx context.Context, prompt string, extra string) (string, error) {
	fullPrompt := prompt
	if extra != "" {
		fullPrompt = extra + "\n\n" + prompt
	}

	payload, err := json.Marshal(ollamaRequest{
		Model:  o.model,
		Prompt: fullPrompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: 0.7,
			TopP:        0.9,
			TopK:        40,
		},
	})
	if err != nil {
		return "", apperrors.Collaborator("failed to encode generation request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewBuffer(payload))
	if err != nil {
		return "", apperrors.Collaborator("failed to build generation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		o.logger.Error("Generation service unreachable", zap.Error(err))
		return "", apperrors.Collaborator("generation service unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.Collaborator("failed to read generation response", err)
	}

	if resp.StatusCode != http.StatusOK {
		o.logger.Error("Generation service returned non-200 status",
			zap.Int("status", resp.StatusCode))
		return "", apperrors.Collaborator(
			fmt.Sprintf("generation service returned status %d", resp.StatusCode), nil)
	}

	var result ollamaResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.Collaborator("invalid generation response", err)
	}
	if result.Response == "" {
		return "", apperrors.Collaborator("empty generation response", nil)
	}

	return result.Response, nil
}
