package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/scribelabs/marketscribe/api"
	"github.com/scribelabs/marketscribe/config"
	"github.com/scribelabs/marketscribe/fetch"
	"github.com/scribelabs/marketscribe/guidelines"
	"github.com/scribelabs/marketscribe/llm"
	"github.com/scribelabs/marketscribe/policy"
	"github.com/scribelabs/marketscribe/service"
	"github.com/scribelabs/marketscribe/session"
	"github.com/scribelabs/marketscribe/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting marketscribe...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Session backend: %s", cfg.SessionBackend)
	log.Printf("LLM base URL: %s", cfg.LLMBaseURL)

	// Initialize session storage
	st, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer st.Close()

	// Initialize guidelines
	gs, err := guidelines.Load(cfg.GuidelinesPath)
	if err != nil {
		log.Fatalf("Failed to load guidelines: %v", err)
	}

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize clients and service
	fetcher := fetch.New(cfg.SerpAPIURL, cfg.SerpAPIKey, cfg.FetchTimeout)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)
	sessions := session.New(st, cfg.SessionTTL)
	svc := service.New(cfg, fetcher, llmClient, sessions, gs, policyEngine)

	// Initialize handler
	h := api.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down marketscribe...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("marketscribe stopped")
}

// openStore creates the session store selected by SESSION_BACKEND.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.SessionBackend {
	case "sqlite":
		return store.NewSQLiteStore(cfg.DatabaseURL)
	case "badger":
		return store.NewBadgerStore(cfg.BadgerPath, cfg.SessionTTL)
	case "", "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
