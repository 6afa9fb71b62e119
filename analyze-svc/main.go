package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	httpapi "review-insights/analyze-svc/internal/api/http"
	"review-insights/analyze-svc/internal/service"
	"review-insights/analyze-svc/internal/storage"
	"review-insights/config"
)

func main() {
	config.LoadEnv()

	var store service.AnalysisStore
	switch config.GetEnv("ANALYZE_SOURCE", "file") {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		store = storage.NewPostgresStore(db)
	default:
		fileStore, err := storage.NewFileStore(config.GetEnv("ANALYZE_DATA_FILE", "output.json"))
		if err != nil {
			log.Fatal("Failed to load analysis data:", err)
		}
		store = fileStore
	}

	var publisher service.UpdatePublisher
	if config.KafkaEnabled() {
		writer := config.NewKafkaWriter(config.GetEnv("KAFKA_UPDATES_TOPIC", "analysis-updates"))
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	svc := service.NewAnalyzeService(store, publisher)
	go reloadOnHangup(svc)

	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(":"+config.GetEnv("PORT", "8000"), httpapi.NewRouter(handler))
}

func reloadOnHangup(svc service.AnalyzeServiceInterface) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)
	for range signals {
		if _, err := svc.Reload(context.Background()); err != nil {
			log.Printf("ERROR: reload analysis data: %v", err)
		}
	}
}
