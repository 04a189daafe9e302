package main

import (
	"context"
	"log"

	"github.com/hanntran/folio-forge/adapters/docparse"
	"github.com/hanntran/folio-forge/adapters/event"
	httpAdapter "github.com/hanntran/folio-forge/adapters/http"
	"github.com/hanntran/folio-forge/adapters/llm"
	"github.com/hanntran/folio-forge/adapters/persistence"
	"github.com/hanntran/folio-forge/internal/application/service"
	"github.com/hanntran/folio-forge/internal/application/usecase/extract"
	portfolioUC "github.com/hanntran/folio-forge/internal/application/usecase/portfolio"
	"github.com/hanntran/folio-forge/internal/config"
	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/logger"
	"github.com/hanntran/folio-forge/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Folio Forge API server...")

	if cfg.Jaeger.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "folio-forge-server")
		if err != nil {
			appLogger.Fatal("cannot initialize tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Storage backend: Postgres when a DSN is configured, otherwise the
	// in-process store (state lost on exit).
	var repo portfolio.Repository
	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		repo = persistence.NewPostgresPortfolioRepo(dbPool, appLogger)
	} else {
		appLogger.Warn("DB_DSN not set, using in-memory portfolio store")
		repo = persistence.NewMemoryPortfolioRepo()
	}

	var renderCache service.RenderCache
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		renderCache = persistence.NewRedisRenderCache(redisClient, appLogger)
		appLogger.Info("Connected to Redis.")
	}

	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = newKafkaProducer(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
	}

	llmService, err := llm.NewOpenAILLMAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot initialize LLM adapter", err)
	}

	extractor := extract.NewExtractor(llmService, appLogger)
	classifier := extract.NewClassifier(llmService, appLogger)
	resumeParser := docparse.NewPDFParser()

	generateUC := portfolioUC.NewGeneratePortfolioUseCase(repo, extractor, classifier, kafkaClient, appLogger)
	updateUC := portfolioUC.NewUpdatePortfolioUseCase(repo, renderCache, kafkaClient, appLogger)
	getUC := portfolioUC.NewGetPortfolioUseCase(repo)
	renderUC := portfolioUC.NewRenderPortfolioUseCase(repo, renderCache, appLogger)
	feedUC := portfolioUC.NewFeedUseCase(repo, cfg.App.PublicBaseURL)

	handler := httpAdapter.NewPortfolioHandler(generateUC, updateUC, getUC, renderUC, feedUC, resumeParser, appLogger)
	router := httpAdapter.NewRouter(handler, appLogger)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}

func newKafkaProducer(cfg config.Config, log logger.Logger) (*event.KafkaProducerClient, error) {
	client, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Initialized Kafka producer.")
	return client, nil
}
