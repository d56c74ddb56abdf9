// Package main is the entry point for the greeting service HTTP server.
package main

import (
	"log"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv := server.New(&server.Dependencies{Config: cfg})

	log.Printf("Starting greeting service %s on port %s (mode=%s)", cfg.Server.Version, cfg.Server.Port, cfg.Server.Mode)
	if err := srv.Run(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
