package kiosk

import (
	"go-fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sessions := r.Group("/kiosk")
	{
		sessions.POST("/sessions", middleware.RateLimitByIP(0.2, 5), h.StartSession)
	}
}
