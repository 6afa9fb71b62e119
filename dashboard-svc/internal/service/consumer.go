package service

import (
	"context"
	"encoding/json"
	"log"

	"review-insights/dashboard-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer evicts cached records when the analysis pipeline reports new
// results for a restaurant. Open page views keep their snapshot.
type Consumer struct {
	Reader MessageReader
	Cache  RecordCache
}

func NewConsumer(reader MessageReader, cache RecordCache) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting analysis update consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Analysis update consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.AnalysisUpdate
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessUpdate(ctx, msg)
	}
}

func (c *Consumer) ProcessUpdate(ctx context.Context, msg domain.AnalysisUpdate) {
	if msg.Type != domain.EventAnalysisUpdated || msg.RestaurantID <= 0 {
		return
	}
	if err := c.Cache.DeleteRecord(ctx, msg.RestaurantID); err != nil {
		log.Printf("Error evicting record %d: %v", msg.RestaurantID, err)
		return
	}
	log.Printf("Evicted cached record for restaurant %d", msg.RestaurantID)
}
