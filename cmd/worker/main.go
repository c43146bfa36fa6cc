package main

import (
	"log"

	"go-fichaje/internal/app"
	"go-fichaje/internal/config"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	apperror.Init()

	if err := app.RunWorker(cfg, zl); err != nil {
		zl.Fatal("run worker failed", zap.Error(err))
	}
}
