package app

import (
	"context"

	"go-fichaje/internal/attendance"
	"go-fichaje/internal/audit"
	"go-fichaje/internal/clockcode"
	"go-fichaje/internal/kiosk"
	"go-fichaje/internal/messaging/kafka"
	"go-fichaje/internal/middleware"
	"go-fichaje/internal/rbac"
	"go-fichaje/internal/rbac/infra"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, in *Infra) error {
	cfg := in.Config
	logger := in.Logger

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(in.GormDB)
	auditRepo := audit.NewRepository(in.GormDB)
	clockCodeRepo := clockcode.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.DB)
	rbacRepo := rbac.NewStaticRepository()

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(
		in.DB,
		attendanceRepo,
		outboxRepo,
		attendance.OptionsFromConfig(cfg.Attendance),
		logger,
	)
	auditService := audit.NewService(auditRepo, logger)
	clockCodeService := clockcode.NewService(clockCodeRepo, in.Redis, cfg.Attendance.ResolveCacheTTL, logger)
	kioskService := kiosk.NewService(clockCodeService, cfg.Auth.JWTSecret, cfg.Auth.KioskTTL, logger)

	// --- Handlers ---
	poller := attendance.NewPoller(attendanceService, cfg.Attendance.PollInterval, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, poller, rbacService, logger)
	auditHandler := audit.NewHandler(auditService, logger)
	clockCodeHandler := clockcode.NewHandler(clockCodeService, logger)
	kioskHandler := kiosk.NewHandler(kioskService, gin.Mode() == gin.ReleaseMode, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	kioskLookup := func(ctx context.Context, code string) (string, error) {
		resolved, err := clockCodeService.Resolve(ctx, code)
		return resolved.EmployeeID, err
	}

	auth := gin.HandlersChain{
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.KioskSessionGuard(kioskLookup),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(5, 20),
	}

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		kiosk.RegisterRoutes(api, kioskHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, auth, in.Redis)
		clockcode.RegisterRoutes(api, clockCodeHandler, rbacService, auth)
		audit.RegisterRoutes(api, auditHandler, rbacService, auth)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, auth)
	}

	return nil
}
