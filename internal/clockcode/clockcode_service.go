package clockcode

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ResolveKeyPrefix       = "clockcodes:resolve:"
	defaultResolveCacheTTL = 10 * time.Minute
)

func GetResolveKey(code string) string {
	return ResolveKeyPrefix + code
}

// NormalizeCode trims and upper-cases a code the way it is stored.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

//go:generate mockgen -source=clockcode_service.go -destination=mock/clockcode_service_mock.go -package=mock
type Service interface {
	Resolve(ctx context.Context, code string) (ResolveResponse, error)
	Upsert(ctx context.Context, actorID string, req UpsertRequest) (CodeResponse, error)
	Deactivate(ctx context.Context, id string) error
	ListActive(ctx context.Context, search string) ([]CodeResponse, error)
	BulkImport(ctx context.Context, actorID string, rows []ImportRow) (ImportResponse, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService builds the code directory. rdb may be nil, which disables the
// resolve cache.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("clockcode.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clockcode.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultResolveCacheTTL
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, cacheTTL: cacheTTL, logger: l}
}

func (s *service) Resolve(ctx context.Context, code string) (ResolveResponse, error) {
	code = NormalizeCode(code)
	if code == "" {
		return ResolveResponse{}, clockcodeerrors.ErrCodeRequired
	}

	cacheKey := GetResolveKey(code)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp ResolveResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		entry, err := s.repo.FindActiveByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return nil, clockcodeerrors.ErrCodeNotFound
		}

		resp := ResolveResponse{
			Code:        entry.Code,
			EmployeeID:  entry.EmployeeID,
			Description: entry.Description,
		}
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ResolveResponse{}, err
	}
	return v.(ResolveResponse), nil
}

func (s *service) Upsert(ctx context.Context, actorID string, req UpsertRequest) (CodeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	code := NormalizeCode(req.Code)
	if code == "" {
		return CodeResponse{}, clockcodeerrors.ErrCodeRequired
	}
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return CodeResponse{}, clockcodeerrors.ErrEmployeeRequired
	}

	entry, err := s.repo.Upsert(ctx, &CodeEntry{
		Code:        code,
		EmployeeID:  employeeID,
		Description: trimOptional(req.Description),
		CreatedBy:   actorID,
	})
	if err != nil {
		log.Warn("upsert code failed", zap.String("code", code), zap.Error(err))
		return CodeResponse{}, err
	}

	s.invalidate(ctx, code)
	log.Info("code upserted", zap.String("code", code), zap.String("employee_id", employeeID))
	return mapToResponse(*entry), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return clockcodeerrors.ErrInvalidID
	}

	entry, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, entryID); err != nil {
		return err
	}

	s.invalidate(ctx, entry.Code)
	contextutil.GetLogger(ctx, s.logger).Info("code deactivated", zap.String("code", entry.Code))
	return nil
}

func (s *service) ListActive(ctx context.Context, search string) ([]CodeResponse, error) {
	rows, err := s.repo.ListActive(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// BulkImport upserts row by row. A failing row is counted and reported, the
// rest of the batch continues.
func (s *service) BulkImport(ctx context.Context, actorID string, rows []ImportRow) (ImportResponse, error) {
	if len(rows) == 0 {
		return ImportResponse{}, clockcodeerrors.ErrImportNoData
	}

	var resp ImportResponse
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return resp, err
		}

		req := UpsertRequest{Code: row.Code, EmployeeID: row.EmployeeID}
		if d := strings.TrimSpace(row.Description); d != "" {
			req.Description = &d
		}

		if _, err := s.Upsert(ctx, actorID, req); err != nil {
			resp.Errors++
			resp.Failures = append(resp.Failures, ImportFailure{
				Row:     row.Row,
				Code:    NormalizeCode(row.Code),
				Message: apperror.ToHTTP(err).Message,
			})
			continue
		}
		resp.Processed++
	}

	s.logger.Info("code import finished",
		zap.Int("processed", resp.Processed),
		zap.Int("errors", resp.Errors),
	)
	return resp, nil
}

func (s *service) invalidate(ctx context.Context, code string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetResolveKey(code)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate resolve cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func mapToResponse(e CodeEntry) CodeResponse {
	resp := CodeResponse{
		ID:          e.ID.String(),
		Code:        e.Code,
		EmployeeID:  e.EmployeeID,
		Description: e.Description,
		Active:      e.Active,
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	if !e.UpdatedAt.IsZero() {
		resp.UpdatedAt = e.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(rows []CodeEntry) []CodeResponse {
	res := make([]CodeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
