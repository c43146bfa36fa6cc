package rbac

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-fichaje/internal/domain"
	"go-fichaje/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct{}

func (m *mockService) LoadPolicy() error { return nil }

func (m *mockService) Enforce(req EnforceRequest) (bool, error) {
	return req.Role == domain.RoleAdmin, nil
}

func (m *mockService) ListPermissions() ([]PermissionResponse, error) {
	return []PermissionResponse{{Role: domain.RoleAdmin, Resource: ResourceAudit, Action: ActionRead}}, nil
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&mockService{})

	router := gin.New()
	router.GET("/rbac/enforce", withRole(domain.RoleAdmin), handler.Enforce)

	t.Run("allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/enforce?resource=audit&action=read", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var env struct {
			Ok   bool            `json:"ok"`
			Data EnforceResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Data.Allowed)
	})

	t.Run("missing action", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/enforce?resource=audit", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ListPermissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&mockService{})

	router := gin.New()
	router.GET("/rbac/permissions", handler.ListPermissions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var env response.ApiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
}
