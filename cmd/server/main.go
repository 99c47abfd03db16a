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

	"coach-relay/internal/config"
	"coach-relay/internal/handlers"
	"coach-relay/internal/router"
	"coach-relay/internal/services"
)

func main() {
	log.Println("🚀 Starting Coach Relay...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if !cfg.HasCredential() {
		log.Println("✗ GEMINI_API_KEY is not set; /coach/chat will answer 500 until it is")
	}

	// ──── Step 2: Initialize Gemini Client ────
	geminiClient := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiTimeout)
	coachService := services.NewCoachService(geminiClient, cfg.HasCredential())
	log.Printf("✓ Gemini client initialized (model %s)", cfg.GeminiModel)

	// ──── Step 3: Start HTTP Server ────
	chatHandler := handlers.NewChatHandler(coachService, cfg.MaxBodyBytes)
	r := router.New(chatHandler)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Coach Relay ready on http://localhost:%s", cfg.Port)
	log.Printf("  Chat: POST http://localhost:%s/coach/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
