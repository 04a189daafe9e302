package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hanntran/folio-forge/adapters/event"
	"github.com/hanntran/folio-forge/adapters/media_storage"
	"github.com/hanntran/folio-forge/adapters/persistence"
	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/config"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/logger"
)

// The worker moves inline profile pictures to hosted storage: it consumes
// portfolio events, uploads any inline data URL to Cloudinary, and rewrites
// the record with the hosted URL.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Folio Forge worker...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()
	repo := persistence.NewPostgresPortfolioRepo(dbPool, appLogger)

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot initialize uploader", err)
	}

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicPortfolioEvents,
		GroupID:  "portfolio-picture-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicPortfolioEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read Kafka message", err)
			time.Sleep(time.Second)
			continue
		}

		var payload event.PortfolioEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Error("Malformed portfolio event payload", err)
			continue
		}

		if err := hostInlinePicture(ctx, repo, uploader, payload); err != nil {
			appLogger.Error("Failed to process portfolio event", err,
				zap.String("share_id", payload.ShareID.String()),
				zap.String("event_type", string(payload.EventType)))
		}
	}
}

func hostInlinePicture(ctx context.Context, repo portfolio.Repository, uploader service.Uploader, payload event.PortfolioEventPayload) error {
	_, data, ok := portfolio.DecodePictureDataURL(payload.ProfilePictureURL)
	if !ok {
		// Already hosted or a placeholder; nothing to do.
		return nil
	}

	record, err := repo.FindByID(ctx, payload.ShareID)
	if err != nil {
		return err
	}
	if _, _, stillInline := portfolio.DecodePictureDataURL(record.ProfilePictureURL); !stillInline {
		// A later update already replaced the picture.
		return nil
	}

	folder := "portfolios/pictures"
	url, err := uploader.Upload(ctx, bytes.NewReader(data), folder, record.ShareID.String())
	if err != nil {
		return err
	}

	record.ProfilePictureURL = url
	record.UpdatedAt = time.Now().UTC()
	return repo.Update(ctx, record)
}
