package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/adapters/event"
	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/theme"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type UpdatePortfolioUseCase struct {
	repo        portfolio.Repository
	renderCache service.RenderCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewUpdatePortfolioUseCase(
	repo portfolio.Repository,
	cache service.RenderCache,
	k *event.KafkaProducerClient,
	log logger.Logger,
) *UpdatePortfolioUseCase {
	return &UpdatePortfolioUseCase{repo: repo, renderCache: cache, kafkaClient: k, logger: log}
}

type UpdatePortfolioInput struct {
	ShareID uuid.UUID
	Profile portfolio.Profile

	// ProfilePictureURL replaces the stored picture when non-empty.
	ProfilePictureURL string
}

type UpdatePortfolioOutput struct {
	Record *portfolio.Record
}

// Execute replaces the stored profile, re-normalizing social URLs. An
// unknown profession in the payload is coerced back to Default so the
// theme-table invariant holds.
func (uc *UpdatePortfolioUseCase) Execute(ctx context.Context, input UpdatePortfolioInput) (*UpdatePortfolioOutput, error) {
	record, err := uc.repo.FindByID(ctx, input.ShareID)
	if err != nil {
		return nil, err
	}

	profile := input.Profile
	if !theme.IsKnown(profile.Profession) {
		profile.Profession = theme.DefaultProfession
	}
	portfolio.NormalizeSocialLinks(&profile)

	record.Profile = profile
	record.SelectedTheme = theme.ForProfession(profile.Profession).Name
	if input.ProfilePictureURL != "" {
		record.ProfilePictureURL = input.ProfilePictureURL
	}
	record.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if uc.renderCache != nil {
		uc.renderCache.Invalidate(ctx, record.ShareID)
	}

	if uc.kafkaClient != nil {
		go func() {
			payload := event.PortfolioEventPayload{
				EventType:         event.PortfolioEventTypeUpdated,
				ShareID:           record.ShareID,
				ProfileName:       record.Profile.PersonalInfo.Name,
				ProfilePictureURL: record.ProfilePictureURL,
			}
			if err := uc.kafkaClient.PublishPortfolioEvent(context.Background(), payload); err != nil {
				uc.logger.Error("Failed to publish portfolio event", err,
					zap.String("share_id", record.ShareID.String()))
			}
		}()
	}

	return &UpdatePortfolioOutput{Record: record}, nil
}
