package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/noteagent/noteagent/db"
	"github.com/noteagent/noteagent/internal/auth"
	"github.com/noteagent/noteagent/internal/config"
	"github.com/noteagent/noteagent/internal/handlers"
	"github.com/noteagent/noteagent/internal/middleware"
	"github.com/noteagent/noteagent/internal/router"
	"github.com/noteagent/noteagent/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()

	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	s := store.New(database, cfg.DefaultPageSize, cfg.MaxPageSize)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	h := handlers.New(s, tokens)
	requireAuth := middleware.AuthMiddleware(tokens, s)

	r := router.NewRouter(h, requireAuth, cfg.AllowedOrigins)

	logrus.Infof("Listening on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
