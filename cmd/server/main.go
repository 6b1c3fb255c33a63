package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"flightsearch-service/internal/infrastructure/config"
	"flightsearch-service/internal/infrastructure/oauth"
	amadeusRepo "flightsearch-service/internal/interface/repository"
	"flightsearch-service/internal/interface/rest"
	"flightsearch-service/internal/usecase"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Flight Search Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up metrics
	searchMetrics := metrics.NewMetrics("flightsearch", prometheus.DefaultRegisterer)

	// Set up token provider and flight offer repository
	tokenProvider := oauth.NewAmadeusOAuth(
		cfg.AmadeusClientID,
		cfg.AmadeusClientSecret,
		cfg.AmadeusAuthURL,
		cfg.AmadeusTimeout,
		log,
	)
	offerRepository := amadeusRepo.NewAmadeusRepository(cfg.AmadeusBaseURL, cfg.AmadeusTimeout, log)

	// Set up search pipeline and HTTP handler
	flightSearch := usecase.NewFlightSearch(tokenProvider, offerRepository, log, searchMetrics)
	flightHandler := rest.NewFlightHandler(flightSearch, log)

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/flights", flightHandler.Search)
	mux.HandleFunc("GET /health", flightHandler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	// CORS wraps the whole mux so pre-flight requests are handled
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler.Handler(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("Flight Search Service stopped")
}
