package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/theme"
	"github.com/hanntran/folio-forge/pkg/logger"
	"go.uber.org/zap"
)

// Classifier maps a profile onto one of the known profession labels.
// It never fails: any model error or unrecognized reply falls back to the
// Default profession.
type Classifier struct {
	llm    service.LLMService
	logger logger.Logger
}

func NewClassifier(llm service.LLMService, log logger.Logger) *Classifier {
	return &Classifier{llm: llm, logger: log}
}

func (c *Classifier) Classify(ctx context.Context, p *portfolio.Profile) string {
	prompt := fmt.Sprintf(`Classify this professional into exactly one of these categories: %s.
Respond with the category name only, nothing else.

Summary: %s. Skills: %s`,
		strings.Join(theme.KnownProfessions, ", "),
		p.Summary,
		strings.Join(p.Skills, ", "))

	raw, err := c.llm.GenerateChatResponse(ctx, prompt)
	if err != nil {
		c.logger.Warn("Profession classification failed, using default", zap.Error(err))
		return theme.DefaultProfession
	}

	label := strings.TrimSpace(CleanModelResponse(raw))
	if !theme.IsKnown(label) {
		c.logger.Warn("Classifier returned unknown label, using default", zap.String("label", label))
		return theme.DefaultProfession
	}
	return label
}
