package clockcode_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-fichaje/internal/clockcode"
	clockcodeerrors "go-fichaje/internal/clockcode/errors"
	"go-fichaje/internal/clockcode/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const cacheTTL = 5 * time.Minute

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := clockcode.NewService(repo, rdb, cacheTTL)

	desc := "Recepción"
	key := clockcode.GetResolveKey("A1")
	want := clockcode.ResolveResponse{Code: "A1", EmployeeID: "EMP-1", Description: &desc}

	t.Run("normalizes and caches", func(t *testing.T) {
		redisMock.ExpectGet(key).RedisNil()
		repo.EXPECT().FindActiveByCode(ctx, "A1").
			Return(&clockcode.CodeEntry{Code: "A1", EmployeeID: "EMP-1", Description: &desc, Active: true}, nil)
		payload, _ := json.Marshal(want)
		redisMock.ExpectSet(key, payload, cacheTTL).SetVal("OK")

		got, err := svc.Resolve(ctx, " a1 ")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		payload, _ := json.Marshal(want)
		redisMock.ExpectGet(key).SetVal(string(payload))

		got, err := svc.Resolve(ctx, "A1")
		assert.NoError(t, err)
		assert.Equal(t, "EMP-1", got.EmployeeID)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("inactive or unknown code", func(t *testing.T) {
		redisMock.ExpectGet(clockcode.GetResolveKey("ZZ")).RedisNil()
		repo.EXPECT().FindActiveByCode(ctx, "ZZ").Return(nil, nil)

		_, err := svc.Resolve(ctx, "zz")
		assert.ErrorIs(t, err, clockcodeerrors.ErrCodeNotFound)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("blank code", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "   ")
		assert.ErrorIs(t, err, clockcodeerrors.ErrCodeRequired)
	})
}

func TestService_Upsert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := clockcode.NewService(repo, rdb, cacheTTL)

	t.Run("stores normalized code and invalidates cache", func(t *testing.T) {
		id := uuid.New()
		repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *clockcode.CodeEntry) (*clockcode.CodeEntry, error) {
			assert.Equal(t, "B7", e.Code)
			assert.Equal(t, "EMP-2", e.EmployeeID)
			assert.Equal(t, "admin-1", e.CreatedBy)
			assert.Nil(t, e.Description)
			out := *e
			out.ID = id
			out.Active = true
			return &out, nil
		})
		redisMock.ExpectDel(clockcode.GetResolveKey("B7")).SetVal(1)

		blank := "  "
		resp, err := svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: " b7", EmployeeID: " EMP-2 ", Description: &blank})
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.True(t, resp.Active)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate surfaces as conflict", func(t *testing.T) {
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, clockcodeerrors.ErrCodeExists)

		_, err := svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: "B7", EmployeeID: "EMP-3"})
		assert.ErrorIs(t, err, clockcodeerrors.ErrCodeExists)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: " ", EmployeeID: "EMP-1"})
		assert.ErrorIs(t, err, clockcodeerrors.ErrCodeRequired)

		_, err = svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: "C1", EmployeeID: ""})
		assert.ErrorIs(t, err, clockcodeerrors.ErrEmployeeRequired)
	})
}

func TestService_UpsertSameCodeConverges(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// rows mirrors fichajes_codigos keyed by the unique codigo column.
	rows := map[string]*clockcode.CodeEntry{}
	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().Upsert(ctx, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, e *clockcode.CodeEntry) (*clockcode.CodeEntry, error) {
			row, ok := rows[e.Code]
			if !ok {
				row = &clockcode.CodeEntry{ID: uuid.New(), Code: e.Code, CreatedBy: e.CreatedBy}
				rows[e.Code] = row
			}
			row.EmployeeID = e.EmployeeID
			row.Description = e.Description
			row.Active = true
			out := *row
			return &out, nil
		})
	repo.EXPECT().FindActiveByCode(ctx, "A1").
		DoAndReturn(func(_ context.Context, code string) (*clockcode.CodeEntry, error) {
			row := rows[code]
			out := *row
			return &out, nil
		})

	rdb, redisMock := redismock.NewClientMock()
	svc := clockcode.NewService(repo, rdb, cacheTTL)
	key := clockcode.GetResolveKey("A1")

	redisMock.ExpectDel(key).SetVal(0)
	first, err := svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: "a1", EmployeeID: "EMP-1"})
	assert.NoError(t, err)

	redisMock.ExpectDel(key).SetVal(1)
	second, err := svc.Upsert(ctx, "admin-1", clockcode.UpsertRequest{Code: " A1 ", EmployeeID: "EMP-2"})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "EMP-2", second.EmployeeID)
	assert.Len(t, rows, 1)
	assert.True(t, rows["A1"].Active)

	redisMock.ExpectGet(key).RedisNil()
	payload, _ := json.Marshal(clockcode.ResolveResponse{Code: "A1", EmployeeID: "EMP-2"})
	redisMock.ExpectSet(key, payload, cacheTTL).SetVal("OK")

	got, err := svc.Resolve(ctx, "a1")
	assert.NoError(t, err)
	assert.Equal(t, "EMP-2", got.EmployeeID)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_Deactivate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()
	svc := clockcode.NewService(repo, rdb, cacheTTL)
	id := uuid.New()

	t.Run("deactivates and invalidates", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(&clockcode.CodeEntry{ID: id, Code: "A1"}, nil)
		repo.EXPECT().Deactivate(ctx, id).Return(nil)
		redisMock.ExpectDel(clockcode.GetResolveKey("A1")).SetVal(1)

		assert.NoError(t, svc.Deactivate(ctx, id.String()))
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id).Return(nil, clockcodeerrors.ErrCodeNotFound)
		assert.ErrorIs(t, svc.Deactivate(ctx, id.String()), clockcodeerrors.ErrCodeNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Deactivate(ctx, "nope"), clockcodeerrors.ErrInvalidID)
	})
}

func TestService_BulkImport(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := clockcode.NewService(repo, nil, cacheTTL)

	t.Run("blank code counts as error", func(t *testing.T) {
		repo.EXPECT().Upsert(ctx, gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, e *clockcode.CodeEntry) (*clockcode.CodeEntry, error) {
				out := *e
				out.ID = uuid.New()
				return &out, nil
			})

		resp, err := svc.BulkImport(ctx, "admin-1", []clockcode.ImportRow{
			{Row: 2, Code: "A1", EmployeeID: "EMP-1"},
			{Row: 3, Code: "", EmployeeID: "EMP-2"},
			{Row: 4, Code: "a3", EmployeeID: "EMP-3"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Processed)
		assert.Equal(t, 1, resp.Errors)
		assert.Equal(t, 3, resp.Failures[0].Row)
		assert.Equal(t, "code must not be empty", resp.Failures[0].Message)
	})

	t.Run("repository failure is not fatal", func(t *testing.T) {
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil, errors.New("boom"))
		repo.EXPECT().Upsert(ctx, gomock.Any()).Return(&clockcode.CodeEntry{ID: uuid.New()}, nil)

		resp, err := svc.BulkImport(ctx, "admin-1", []clockcode.ImportRow{
			{Row: 2, Code: "A1", EmployeeID: "EMP-1"},
			{Row: 3, Code: "A2", EmployeeID: "EMP-2"},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Processed)
		assert.Equal(t, 1, resp.Errors)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := svc.BulkImport(ctx, "admin-1", nil)
		assert.ErrorIs(t, err, clockcodeerrors.ErrImportNoData)
	})
}
