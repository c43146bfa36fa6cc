package kiosk

import (
	"context"
	"time"

	"go-fichaje/internal/clockcode"
	"go-fichaje/internal/domain"
	"go-fichaje/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const defaultSessionTTL = 12 * time.Hour

// CodeResolver is the part of the code directory a kiosk needs.
type CodeResolver interface {
	Resolve(ctx context.Context, code string) (clockcode.ResolveResponse, error)
}

//go:generate mockgen -source=kiosk_service.go -destination=mock/kiosk_service_mock.go -package=mock
type Service interface {
	Start(ctx context.Context, code string) (SessionResponse, error)
}

type service struct {
	resolver CodeResolver
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(resolver CodeResolver, secret string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("kiosk.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kiosk.service")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &service{resolver: resolver, secret: []byte(secret), ttl: ttl, now: time.Now, logger: l}
}

// Start resolves the code once and returns a signed session token carrying
// the employee id. Every later attendance call runs on that token.
func (s *service) Start(ctx context.Context, code string) (SessionResponse, error) {
	resolved, err := s.resolver.Resolve(ctx, code)
	if err != nil {
		return SessionResponse{}, err
	}

	expiresAt := s.now().Add(s.ttl)
	token, err := s.generateToken(resolved, expiresAt)
	if err != nil {
		s.logger.Error("sign kiosk token failed", zap.String("code", resolved.Code), zap.Error(err))
		return SessionResponse{}, apperror.ErrInternal.WithCause(err)
	}

	s.logger.Info("kiosk session started",
		zap.String("code", resolved.Code),
		zap.String("employee_id", resolved.EmployeeID),
	)
	return SessionResponse{
		Token:       token,
		EmployeeID:  resolved.EmployeeID,
		Code:        resolved.Code,
		Description: resolved.Description,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *service) generateToken(resolved clockcode.ResolveResponse, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":         "kiosk:" + resolved.Code,
		"employee_id": resolved.EmployeeID,
		"code":        resolved.Code,
		"role":        domain.RoleKiosk,
		"iat":         s.now().Unix(),
		"exp":         expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
