package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beegood/ufund-api/internal/api"
	"github.com/beegood/ufund-api/internal/chat"
	"github.com/beegood/ufund-api/internal/config"
	"github.com/beegood/ufund-api/internal/repository/jsonfile"
	"github.com/beegood/ufund-api/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Open the snapshot-backed stores
	repos, err := jsonfile.NewRepositories(cfg.CupboardFile, cfg.UsersFile, cfg.SessionsFile)
	if err != nil {
		log.Fatalf("failed to open data files: %v", err)
	}

	// The chat backend is optional
	var chatBackend service.ChatBackend
	if cfg.GeminiAPIKey != "" {
		client, err := chat.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to create chat client: %v", err)
		}
		chatBackend = client
	} else {
		log.Println("GEMINI_API_KEY not set; chat endpoints disabled")
	}

	// Initialize services
	services := service.NewServices(repos, chatBackend)

	// Initialize router
	router := api.NewRouter(services, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
