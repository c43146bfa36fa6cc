package kiosk

import (
	"net/http"
	"time"

	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(service Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("kiosk.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kiosk.handler")
	}
	return &Handler{service: service, secureCookie: secureCookie, logger: l}
}

func (h *Handler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Start(c.Request.Context(), req.Code)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("kiosk session rejected",
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	// Browser kiosks keep the token in a cookie; native clients use the body.
	if c.GetHeader("X-Client-Type") == "web" {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "access_token",
			Value:    resp.Token,
			Path:     "/",
			MaxAge:   int(time.Until(resp.ExpiresAt).Seconds()),
			HttpOnly: true,
			Secure:   h.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Session started", resp)
}
