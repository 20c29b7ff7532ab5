package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"submission_review/internal/api"
	"submission_review/internal/app/service"
	"submission_review/internal/common/security"
	"submission_review/internal/domain/repository"
	"submission_review/internal/platform/config"
	"submission_review/internal/platform/database"
	"syscall"
	"time"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	tokens := security.NewTokenManager(cfg.JWTKey, cfg.JWTExp)
	fmt.Println("JWT initialized.")

	// 3. Connect to the document store
	store, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	defer store.Close(context.Background())
	if err := store.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Could not ensure indexes: %v", err)
	}
	fmt.Println("Database connected.")

	// 4. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(store.Database())
	submissionRepo := repository.NewMongoSubmissionRepository(store.Database())

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, tokens)
	submissionService := service.NewSubmissionService(submissionRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(tokens, authService, submissionService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
