package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"

	"github.com/statictask/newsletter/api"
	"github.com/statictask/newsletter/assets"
	rh "github.com/statictask/newsletter/route-handlers"
)

const (
	shutdownTimeout = 15 * time.Second
)

// config for the page server. The API the form posts to is fixed in the
// wasm build and is not configured here.
type config struct {
	Port      string `env:"PORT" envDefault:"3000"`
	AssetsDir string `env:"ASSETS_DIR" envDefault:"./static"`
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	pageHandler := rh.NewPageHandler(assets.IndexHTML, os.DirFS(cfg.AssetsDir))

	mainRouter := chi.NewRouter()
	mainRouter.Mount("/", api.SetupRoutes(pageHandler))

	startServer(cfg.Port, mainRouter)
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}

	if _, err := os.Stat(cfg.AssetsDir); err != nil {
		log.Printf("WARNING: assets directory %q not readable (%v). Build newsletter.wasm into it and copy wasm_exec.js from $(go env GOROOT)/lib/wasm.", cfg.AssetsDir, err)
	}

	return cfg, nil
}

func startServer(port string, router http.Handler) {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Newsletter form server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal // Block until signal received
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
