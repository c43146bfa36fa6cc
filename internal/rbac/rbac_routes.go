package rbac

import (
	"go-fichaje/internal/domain"
	"go-fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, auth gin.HandlersChain) {
	group := r.Group("/rbac")
	group.Use(auth...)
	{
		group.GET("/enforce", middleware.RoleMiddleware(domain.RoleAdmin), handler.Enforce)
		group.GET("/permissions", middleware.RBACAuthorize(service, ResourceRBAC, ActionRead), handler.ListPermissions)
	}
}
