package main

import (
	"log"
	"net/http"

	"review-insights/api-gateway/internal/gateway"
	"review-insights/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	cfg := gateway.Config{
		DashboardSvcURL: config.GetEnv("DASHBOARD_SVC_URL", "http://localhost:8081"),
		AnalyzeSvcURL:   config.GetEnv("ANALYZE_SVC_URL", "http://localhost:8000"),
	}

	gw := gateway.NewGateway(cfg, gateway.NewClient())

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(r)

	port := config.GetEnv("PORT", "8080")
	log.Println("API Gateway starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
