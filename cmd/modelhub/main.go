package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/app"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)

	service, err := app.NewService()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := service.Stop(context.Background()); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if err := service.Start(); err != nil {
		log.Fatalf("Failed to start service: %v", err)
	}
}
