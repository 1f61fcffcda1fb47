package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/dataconv/alteryx2bq/internal/config"
	"github.com/dataconv/alteryx2bq/internal/handler"
	"github.com/dataconv/alteryx2bq/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Missing credentials are the only fatal condition: exit before serving.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	h := handler.NewHandler(srv.Dispatcher)
	srv.SetupRouter(h.HandleRoot, h.HandleHealth, h.HandleChat)

	srv.Start(ctx)
}
