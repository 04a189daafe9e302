package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hanntran/folio-forge/internal/config"
	"github.com/segmentio/kafka-go"
)

const (
	TopicPortfolioEvents = "portfolio.events"
)

type PortfolioEventType string

const (
	PortfolioEventTypeCreated PortfolioEventType = "portfolio.created"
	PortfolioEventTypeUpdated PortfolioEventType = "portfolio.updated"
)

type PortfolioEventPayload struct {
	EventType         PortfolioEventType `json:"event_type"`
	ShareID           uuid.UUID          `json:"share_id"`
	ProfileName       string             `json:"profile_name"`
	ProfilePictureURL string             `json:"profile_picture_url"`
}

type KafkaProducerClient struct {
	PortfolioEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{PortfolioEventsWriter: writer}, nil
}

func (c *KafkaProducerClient) PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal portfolio event: %w", err)
	}

	return c.PortfolioEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.ShareID.String()),
		Value: body,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.PortfolioEventsWriter != nil {
		c.PortfolioEventsWriter.Close()
	}
}
