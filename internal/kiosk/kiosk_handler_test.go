package kiosk_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	clockcodeerrors "go-fichaje/internal/clockcode/errors"
	"go-fichaje/internal/kiosk"
	"go-fichaje/internal/kiosk/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	r := gin.New()
	r.POST("/kiosk/sessions", kiosk.NewHandler(svc, false).StartSession)

	post := func(body string, web bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/kiosk/sessions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if web {
			req.Header.Set("X-Client-Type", "web")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing code", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, post(`{}`, false).Code)
	})

	t.Run("unknown code", func(t *testing.T) {
		svc.EXPECT().Start(gomock.Any(), "ZZ").Return(kiosk.SessionResponse{}, clockcodeerrors.ErrCodeNotFound)
		assert.Equal(t, http.StatusNotFound, post(`{"code":"ZZ"}`, false).Code)
	})

	t.Run("web client gets cookie", func(t *testing.T) {
		svc.EXPECT().Start(gomock.Any(), "A1").Return(kiosk.SessionResponse{
			Token:      "tok",
			EmployeeID: "EMP-1",
			Code:       "A1",
			ExpiresAt:  time.Now().Add(time.Hour),
		}, nil)

		w := post(`{"code":"A1"}`, true)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
		assert.Contains(t, w.Body.String(), `"employee_id":"EMP-1"`)
	})
}
