package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"review-insights/config"
	httpapi "review-insights/dashboard-svc/internal/api/http"
	"review-insights/dashboard-svc/internal/render"
	"review-insights/dashboard-svc/internal/service"
	"review-insights/dashboard-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	client := &http.Client{Timeout: config.GetDuration("ANALYZE_TIMEOUT", 0)}
	source := storage.NewAnalyzeClient(config.GetEnv("ANALYZE_BASE_URL", "http://localhost:8000"), client)

	rdb := config.MustInitRedis()
	defer rdb.Close()
	cache := storage.NewRedisCache(rdb,
		config.GetDuration("RECORD_CACHE_TTL", 5*time.Minute),
		config.GetDuration("VIEW_TTL", 30*time.Minute),
	)

	var listing service.ListingRepository
	switch src := config.GetEnv("LISTING_SOURCE", "data/restaurants.json"); src {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		listing = storage.NewPostgresRepository(db)
	default:
		listing = storage.NewFileListing(src)
	}

	var publisher service.EventPublisher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.GetEnv("KAFKA_EVENTS_TOPIC", "page-events"))
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)

		reader := config.NewKafkaReader(config.GetEnv("KAFKA_UPDATES_TOPIC", "analysis-updates"), "dashboard-svc-consumer")
		defer reader.Close()
		go service.NewConsumer(reader, cache).Start(ctx)
	}

	qr := service.DefaultQRGenerator{
		BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		Size:    config.GetInt("QR_SIZE", 256),
	}
	pages := service.NewPageService(source, cache, cache, listing, publisher, qr)
	if order := config.GetEnv("ASPECT_ORDER", ""); order != "" {
		pages.AspectOrder = strings.Split(order, ",")
	}
	if err := pages.LoadListing(); err != nil {
		log.Printf("ERROR: %v", err)
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	handler := httpapi.NewHandler(pages, renderer)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), httpapi.NewRouter(handler))
}
