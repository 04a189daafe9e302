package portfolio

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/renderer"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type RenderPortfolioUseCase struct {
	repo        portfolio.Repository
	renderCache service.RenderCache
	logger      logger.Logger
}

func NewRenderPortfolioUseCase(repo portfolio.Repository, cache service.RenderCache, log logger.Logger) *RenderPortfolioUseCase {
	return &RenderPortfolioUseCase{repo: repo, renderCache: cache, logger: log}
}

type RenderPortfolioInput struct {
	ShareID uuid.UUID
}

type RenderPortfolioOutput struct {
	HTML string
}

func (uc *RenderPortfolioUseCase) Execute(ctx context.Context, input RenderPortfolioInput) (*RenderPortfolioOutput, error) {
	if uc.renderCache != nil {
		if html, ok := uc.renderCache.Get(ctx, input.ShareID); ok {
			return &RenderPortfolioOutput{HTML: html}, nil
		}
	}

	record, err := uc.repo.FindByID(ctx, input.ShareID)
	if err != nil {
		return nil, err
	}

	html, err := renderer.Render(record)
	if err != nil {
		uc.logger.Error("Portfolio render failed", err, zap.String("share_id", input.ShareID.String()))
		return nil, apperror.NewInternal("failed to render portfolio page", err)
	}

	if uc.renderCache != nil {
		uc.renderCache.Set(ctx, input.ShareID, html)
	}

	return &RenderPortfolioOutput{HTML: html}, nil
}
