package main

import (
	"github.com/DucPPhan/parknow/internal/config"
	"github.com/DucPPhan/parknow/internal/database"
	"github.com/DucPPhan/parknow/internal/pkg/logger"
	"github.com/DucPPhan/parknow/internal/sandbox"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(cfg.Env, cfg.LogLevel)
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	if err := sandbox.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := sandbox.Seed(db); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	r := sandbox.NewRouter(db, cfg.JWTSecret, log)

	log.Info("sandbox listening", zap.String("addr", cfg.SandboxAddr))
	if err := r.Run(cfg.SandboxAddr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
