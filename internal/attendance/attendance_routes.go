package attendance

import (
	"time"

	"go-fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, auth gin.HandlersChain, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	attendances.Use(auth...)
	{
		read := middleware.RBACAuthorize(rbacService, "attendance", "read")
		act := middleware.RBACAuthorize(rbacService, "attendance", "act")
		idemp := middleware.Idempotency(rdb, idempotencyTTL)

		attendances.GET("/state", middleware.RequireEmployee(), read, h.GetState)
		attendances.GET("/state/stream", middleware.RequireEmployee(), read, h.StreamState)

		attendances.POST("/check-in", middleware.RequireEmployee(), act, idemp, h.CheckIn)
		attendances.POST("/check-out", middleware.RequireEmployee(), act, idemp, h.CheckOut)
		attendances.POST("/pauses/start", middleware.RequireEmployee(), act, idemp, h.StartPause)
		attendances.POST("/pauses/end", middleware.RequireEmployee(), act, idemp, h.EndPause)

		attendances.GET("/history", read, h.History)
		attendances.GET("/history/export", read, h.ExportHistory)
		attendances.GET("/summary", read, h.Summary)
	}
}
