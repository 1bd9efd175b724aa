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

	"github.com/presslayer/epaper-studio/pkg/epaper/api"
	"github.com/presslayer/epaper-studio/pkg/epaper/config"
)

func main() {
	// Load configuration from environment
	serverConfig, err := config.Load(config.WithEnv())
	if err != nil {
		log.Fatalf("Failed to load server configuration: %v", err)
	}

	ctx := context.Background()

	// Build service from configuration
	svc, assets, err := serverConfig.BuildService(ctx)
	if err != nil {
		log.Fatalf("Failed to build service: %v", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Service:     svc,
		Assets:      assets,
		Environment: serverConfig.Environment,
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverConfig.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("E-Paper Studio server starting on port %s (env: %s)", serverConfig.Port, serverConfig.Environment)
		log.Printf("Asset storage: %s", serverConfig.StorageType)
		if serverConfig.GeminiAPIKey == "" {
			log.Printf("GEMINI_API_KEY not set; generation endpoints disabled")
		}

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
