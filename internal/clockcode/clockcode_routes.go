package clockcode

import (
	"go-fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlersChain) {
	codes := r.Group("/clock-codes")
	codes.Use(auth...)
	{
		codes.GET("", middleware.RBACAuthorize(rbacService, "clock_code", "read"), h.List)
		codes.GET("/resolve/:code", middleware.RBACAuthorize(rbacService, "clock_code", "read"), h.Resolve)
		codes.POST("", middleware.RBACAuthorize(rbacService, "clock_code", "manage"), h.Upsert)
		codes.POST("/import", middleware.RBACAuthorize(rbacService, "clock_code", "manage"), h.Import)
		codes.DELETE("/:id", middleware.RBACAuthorize(rbacService, "clock_code", "manage"), h.Deactivate)
	}
}
