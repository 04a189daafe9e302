package service

import (
	"context"
)

// LLMService is the outbound port to the external text-generation model.
type LLMService interface {
	GenerateChatResponse(ctx context.Context, prompt string) (string, error)
}
