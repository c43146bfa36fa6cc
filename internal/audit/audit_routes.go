package audit

import (
	"go-fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlersChain) {
	entries := r.Group("/audit")
	entries.Use(auth...)
	{
		entries.GET("", middleware.RBACAuthorize(rbacService, "audit", "read"), h.List)
	}
}
