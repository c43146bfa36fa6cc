package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-fichaje/internal/domain"
	"go-fichaje/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-0123456789"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"employee_id": contextutil.GetEmployeeID(c.Request.Context()),
			"role":        c.GetString("role"),
		})
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("kiosk token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{
			"sub":         "kiosk:A1",
			"employee_id": "EMP-1",
			"role":        domain.RoleKiosk,
			"exp":         time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "kiosk:A1", body["user_id"])
		assert.Equal(t, "EMP-1", body["employee_id"])
		assert.Equal(t, domain.RoleKiosk, body["role"])
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, jwt.MapClaims{
			"user_id": "u-1",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u-1"}).SignedString([]byte("another-secret-xxxxxxxx"))
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type stubRBAC struct {
	allowed bool
	err     error
}

func (s stubRBAC) Enforce(domain.EnforceRequest) (bool, error) { return s.allowed, s.err }

func TestRBACAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(svc RBACService, role string) int {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if role != "" {
				c.Set("role", role)
			}
			c.Next()
		}, RBACAuthorize(svc, "clock_code", "manage"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, run(stubRBAC{allowed: true}, domain.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run(stubRBAC{allowed: false}, domain.RoleKiosk))
	assert.Equal(t, http.StatusUnauthorized, run(stubRBAC{allowed: true}, ""))
	assert.Equal(t, http.StatusInternalServerError, run(stubRBAC{err: errors.New("boom")}, domain.RoleAdmin))
}

func TestRequireEmployee(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireEmployee(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set("role", c.GetHeader("X-Role"))
		c.Next()
	}, RoleMiddleware(domain.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for role, want := range map[string]int{
		domain.RoleAdmin: http.StatusNoContent,
		domain.RoleKiosk: http.StatusForbidden,
		"":               http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Role", role)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "role %q", role)
	}
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", RateLimitByIP(0.001, 1), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	calls := 0
	r := gin.New()
	r.POST("/check-in", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}, Idempotency(db, time.Hour), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	cacheKey := IdempotencyKey("/check-in", "u-1", "k-1")

	t.Run("first request stores response", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
		stored, _ := json.Marshal(storedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})
		mock.ExpectSet(cacheKey, string(stored), time.Hour).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips handler", func(t *testing.T) {
		stored, _ := json.Marshal(storedResponse{Status: http.StatusCreated, Body: json.RawMessage(`{"ok":true}`)})
		mock.ExpectGet(cacheKey).SetVal(string(stored))

		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate", func(t *testing.T) {
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/check-in", nil)
		req.Header.Set("Idempotency-Key", "k-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
