package main

import (
	"log"

	"go-fichaje/internal/app"
	"go-fichaje/internal/bootstrap"
	"go-fichaje/internal/config"
	"go-fichaje/internal/middleware"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/logger"

	"github.com/gin-gonic/gin"
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

	in, err := app.Connect(cfg, zl, true)
	if err != nil {
		zl.Fatal("connect infrastructure failed", zap.Error(err))
	}
	defer in.Close()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(zl))

	// build dependency + routes
	if err := app.BuildApp(r, in); err != nil {
		zl.Fatal("build app failed", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger(zl)
	if err := bootstrap.StartHTTPServer(r, cfg.Server, auditLogger, zl); err != nil {
		zl.Error("http server stopped with error", zap.Error(err))
	}
}
