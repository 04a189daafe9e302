package portfolio

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/adapters/event"
	"github.com/hanntran/folio-forge/internal/application/usecase/extract"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/internal/domain/theme"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type GeneratePortfolioUseCase struct {
	repo        portfolio.Repository
	extractor   *extract.Extractor
	classifier  *extract.Classifier
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewGeneratePortfolioUseCase(
	repo portfolio.Repository,
	ex *extract.Extractor,
	cl *extract.Classifier,
	k *event.KafkaProducerClient,
	log logger.Logger,
) *GeneratePortfolioUseCase {
	return &GeneratePortfolioUseCase{
		repo:        repo,
		extractor:   ex,
		classifier:  cl,
		kafkaClient: k,
		logger:      log,
	}
}

type GeneratePortfolioInput struct {
	// ResumeText is the raw text extracted from an uploaded document.
	// Exactly one of ResumeText and ManualProfile must be set.
	ResumeText    string
	ManualProfile *portfolio.Profile

	// Photo, when present, is stored inline as a data URL.
	Photo            []byte
	PhotoContentType string
}

type GeneratePortfolioOutput struct {
	Record *portfolio.Record
}

// Execute assembles and persists exactly one record per invocation.
// Re-submitting the same resume creates a new record with a new identifier.
func (uc *GeneratePortfolioUseCase) Execute(ctx context.Context, input GeneratePortfolioInput) (*GeneratePortfolioOutput, error) {
	profile, err := uc.buildProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	portfolio.NormalizeSocialLinks(profile)

	record := &portfolio.Record{
		ShareID:           uuid.New(),
		Profile:           *profile,
		ProfilePictureURL: uc.pictureFor(input, profile),
		SelectedTheme:     theme.ForProfession(profile.Profession).Name,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	uc.publish(record, event.PortfolioEventTypeCreated)

	uc.logger.Info("Portfolio generated",
		zap.String("share_id", record.ShareID.String()),
		zap.String("profession", record.Profile.Profession),
		zap.String("theme", record.SelectedTheme))
	return &GeneratePortfolioOutput{Record: record}, nil
}

func (uc *GeneratePortfolioUseCase) buildProfile(ctx context.Context, input GeneratePortfolioInput) (*portfolio.Profile, error) {
	if input.ManualProfile != nil {
		// Manual data bypasses the model entirely.
		p := *input.ManualProfile
		p.Profession = theme.DefaultProfession
		return &p, nil
	}

	text := strings.TrimSpace(input.ResumeText)
	if text == "" {
		return nil, apperror.NewInvalidInput("resume text is empty or could not be extracted", nil)
	}

	profile, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	profile.Profession = uc.classifier.Classify(ctx, profile)
	return profile, nil
}

func (uc *GeneratePortfolioUseCase) pictureFor(input GeneratePortfolioInput, p *portfolio.Profile) string {
	if len(input.Photo) > 0 {
		contentType := input.PhotoContentType
		if contentType == "" {
			contentType = "image/png"
		}
		return portfolio.EncodePictureDataURL(contentType, input.Photo)
	}
	return portfolio.PlaceholderAvatarURL(p.PersonalInfo.Name)
}

func (uc *GeneratePortfolioUseCase) publish(record *portfolio.Record, eventType event.PortfolioEventType) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		payload := event.PortfolioEventPayload{
			EventType:         eventType,
			ShareID:           record.ShareID,
			ProfileName:       record.Profile.PersonalInfo.Name,
			ProfilePictureURL: record.ProfilePictureURL,
		}
		if err := uc.kafkaClient.PublishPortfolioEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish portfolio event", err,
				zap.String("share_id", record.ShareID.String()),
				zap.String("event_type", string(eventType)))
		}
	}()
}
