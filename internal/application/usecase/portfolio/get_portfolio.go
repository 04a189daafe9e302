package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
)

type GetPortfolioUseCase struct {
	repo portfolio.Repository
}

func NewGetPortfolioUseCase(repo portfolio.Repository) *GetPortfolioUseCase {
	return &GetPortfolioUseCase{repo: repo}
}

type GetPortfolioInput struct {
	ShareID uuid.UUID
}

type GetPortfolioOutput struct {
	Record *portfolio.Record
}

func (uc *GetPortfolioUseCase) Execute(ctx context.Context, input GetPortfolioInput) (*GetPortfolioOutput, error) {
	record, err := uc.repo.FindByID(ctx, input.ShareID)
	if err != nil {
		return nil, err
	}
	return &GetPortfolioOutput{Record: record}, nil
}
