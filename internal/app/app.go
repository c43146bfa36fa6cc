package app

import (
	"database/sql"
	"fmt"

	"go-fichaje/internal/config"
	"go-fichaje/internal/database"
	"go-fichaje/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of one process.
type Infra struct {
	Config *config.Config
	Logger *zap.Logger
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

// Connect opens the database (running migrations when enabled) and, if
// configured, Redis.
func Connect(cfg *config.Config, logger *zap.Logger, withRedis bool) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	infra := &Infra{Config: cfg, Logger: logger, GormDB: gormDB, DB: sqlDB}

	if withRedis && cfg.Redis.Enabled {
		rdb, err := connection.ConnectRedisWithRetry(&cfg.Redis, logger)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}
	return infra, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

// BuildApp wires every module onto router.
func BuildApp(router *gin.Engine, infra *Infra) error {
	router.GET("/healthz", healthHandler(infra))
	return registerModules(router, infra)
}
