package main

import (
	"context"
	stdlog "log"

	"github.com/joho/godotenv"

	"go-firebase-todo/backend/internal/auth"
	"go-firebase-todo/backend/internal/config"
	"go-firebase-todo/backend/internal/firebase"
	"go-firebase-todo/backend/internal/logger"
	"go-firebase-todo/backend/internal/repositories"
	"go-firebase-todo/backend/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found")
	}

	cfg := config.Load()
	log := logger.Init("todo-backend", cfg.LogLevel)

	ctx := context.Background()
	provider := firebase.NewProvider(cfg, log)
	fb, err := provider.Client(ctx)
	if err != nil {
		log.Fatalf("Fatal: Failed to initialize Firebase: %v", err)
	}
	defer fb.Close()

	verifier := auth.NewVerifier(fb.Auth, cfg.TokenInfoURL, log)
	todoRepo := repositories.NewTodoRepository(fb.Firestore, log)
	statusRepo := repositories.NewStatusRepository(fb.Firestore, log)

	r := routes.SetupRouter(cfg, log, verifier, todoRepo, statusRepo)

	log.Infof("Server listening on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
