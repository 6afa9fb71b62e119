package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"review-insights/analyze-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishUpdate(ctx context.Context, msg domain.AnalysisUpdate) error {
	payload, _ := json.Marshal(msg)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.RestaurantID)),
		Value: payload,
	})
}
