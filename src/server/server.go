package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"forexsignals/src/analysis"
	"forexsignals/src/connectors"
	"forexsignals/src/handler"
	"forexsignals/src/pipeline"
	"forexsignals/src/repository"
	"forexsignals/src/stream"
)

func StartServer(port string) {
	// Router with middleware
	r := chi.NewRouter()

	// Public routes
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.WithError(err).Error(" \"/healthcheck error")
		}
	})

	analysisCfg := analysis.GetConfig()
	pairs, err := analysis.ParsePairs(analysisCfg.CurrencyPairs)
	if err != nil {
		logger.WithError(err).Fatal("Invalid currency pair universe")
	}
	detector := analysis.NewDetector(pairs, analysisCfg.WordBoundary)

	connCfg := connectors.GetConfig()
	newsClient := connectors.NewNewsAPIClient(connCfg.NewsAPIKey, connCfg.NewsAPIBaseURL)

	hub := stream.NewHub()

	pipe := pipeline.New(
		repository.NewArticleRepository(),
		repository.NewSignalRepository(),
		detector,
		analysis.DefaultThresholds(),
	).WithBroadcaster(hub)

	r.Route("/api", func(r chi.Router) {
		r.Get("/news", handler.DefaultListNewsHandler())
		r.Get("/signals", handler.DefaultListSignalsHandler())
		r.Post("/fetchAndAnalyze", handler.FetchAndAnalyzeHandler(newsClient, pipe, connCfg.NewsQuery, connCfg.NewsPageSize))
		r.Get("/dashboard", handler.DefaultDashboardHandler())
		r.Get("/stream", hub.Handler())
	})

	// Graceful server
	// Server setup
	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
