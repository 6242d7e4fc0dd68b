// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/psychohealer/psychohealer/internal/config"
	"github.com/psychohealer/psychohealer/internal/generator"
	"github.com/psychohealer/psychohealer/internal/handler"
	"github.com/psychohealer/psychohealer/internal/llm"
	"github.com/psychohealer/psychohealer/internal/middleware"
	natsclient "github.com/psychohealer/psychohealer/internal/nats"
	"github.com/psychohealer/psychohealer/internal/router"
	"github.com/psychohealer/psychohealer/internal/service"
	"github.com/psychohealer/psychohealer/internal/store"
	"github.com/psychohealer/psychohealer/internal/video"
	"github.com/psychohealer/psychohealer/pkg/logger"
	"github.com/psychohealer/psychohealer/pkg/tracing"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "psychohealer", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Conversation store
	var (
		convStore store.Store
		nc        *natsclient.Client
	)
	switch cfg.StoreBackend {
	case "jetstream":
		nc, err = natsclient.Connect(natsclient.Config{
			URL:      cfg.NATSURL,
			CAFile:   cfg.NATSCAFile,
			CertFile: cfg.NATSCertFile,
			KeyFile:  cfg.NATSKeyFile,
			Token:    cfg.NATSToken,
		}, log)
		if err != nil {
			log.Error("failed to connect to NATS", zap.Error(err))
			os.Exit(1)
		}
		defer nc.Close()

		convStore, err = store.NewJetStream(ctx, nc)
		if err != nil {
			log.Error("failed to initialize JetStream store", zap.Error(err))
			os.Exit(1)
		}
	default:
		convStore = store.NewMemory()
	}

	// LLM backend registry
	registry := buildRegistry(cfg, log)

	// Pipeline components
	modelRouter := router.New(cfg.GeneralRotation, cfg.RouterCacheSize)
	gen := generator.New(registry, cfg.MaxTokens, cfg.Temperature, log)

	var searcher video.Searcher
	if cfg.YouTubeAPIKey != "" {
		searcher, err = video.NewYouTubeSearcher(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Warn("failed to create YouTube searcher, video recommendations disabled", zap.Error(err))
			searcher = nil
		}
	}
	recommender := video.New(searcher, cfg.MaxVideos, log)

	pool := service.NewPool(cfg.WorkerPoolSize)
	defer pool.Close()

	psychologySvc := service.New(
		modelRouter, gen, recommender, convStore, pool,
		cfg.CallTimeout, cfg.DefaultModel, log,
	)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(nc, version)
	psychologyHandler := handler.NewPsychologyHandler(psychologySvc, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness endpoints
	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1/psychology", func(r chi.Router) {
		r.Post("/chat", psychologyHandler.Chat)
		r.Post("/history", psychologyHandler.History)
		r.Get("/status", psychologyHandler.Status)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}

// buildRegistry wires the configured providers into the backend registry.
// Every backend identifier is always registered so the status endpoint can
// report it; a backend whose provider has no credentials keeps a nil client
// and degrades to "Model not available." at generation time.
func buildRegistry(cfg *config.Config, log *logger.Logger) *llm.Registry {
	registry := llm.NewRegistry()

	var groq llm.Client
	if cfg.GroqAPIKey != "" {
		c, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL)
		if err != nil {
			log.Warn("failed to create Groq client", zap.Error(err))
		} else {
			groq = c
		}
	}
	registry.Register(llm.Backend{ID: "llama", Model: "llama-3.3-70b-versatile", Client: groq})
	registry.Register(llm.Backend{ID: "deepseek", Model: "deepseek-r1-distill-llama-70b", Client: groq})
	registry.Register(llm.Backend{ID: "mistral", Model: "mistral-saba-24b", Client: groq})

	var oai llm.Client
	if cfg.OpenAIAPIKey != "" {
		c, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			log.Warn("failed to create OpenAI client", zap.Error(err))
		} else {
			oai = c
		}
	}
	registry.Register(llm.Backend{ID: "openai", Model: "gpt-3.5-turbo", Client: oai})

	// Claude is optional and only appears when its key is configured.
	if cfg.AnthropicAPIKey != "" {
		c, err := llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		if err != nil {
			log.Warn("failed to create Anthropic client", zap.Error(err))
		} else {
			registry.Register(llm.Backend{ID: "claude", Model: "claude-3-5-haiku-20241022", Client: c})
		}
	}

	return registry
}
