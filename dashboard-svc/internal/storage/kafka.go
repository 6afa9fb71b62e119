package storage

import (
	"context"
	"encoding/json"

	"review-insights/dashboard-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishFilterEvent keys messages by view id so one view's events stay ordered.
func (p *KafkaPublisher) PublishFilterEvent(ctx context.Context, event domain.FilterEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ViewID),
		Value: payload,
	})
}
