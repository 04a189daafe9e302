package llm

import (
	"context"
	"fmt"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/config"
	"github.com/hanntran/folio-forge/pkg/logger"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type openAILLMAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

// NewOpenAILLMAdapter builds the chat adapter. A custom BaseURL makes any
// OpenAI-compatible endpoint (hosted or local) usable without code changes.
func NewOpenAILLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.LLM.APIKey == "" && cfg.LLM.BaseURL == "" {
		return nil, fmt.Errorf("llm api_key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.LLM.APIKey)
	if cfg.LLM.BaseURL != "" {
		clientConfig.BaseURL = cfg.LLM.BaseURL
	}

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("LLM adapter initialized", zap.String("model", cfg.LLM.Model))
	return &openAILLMAdapter{client: client, model: cfg.LLM.Model, log: log}, nil
}

func (a *openAILLMAdapter) GenerateChatResponse(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}
