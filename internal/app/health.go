package app

import (
	"context"
	"net/http"
	"time"

	"go-fichaje/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func healthHandler(infra *Infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "up"}
		code := http.StatusOK
		if err := infra.DB.PingContext(ctx); err != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if infra.Redis != nil {
			status["redis"] = "up"
			if err := infra.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
				code = http.StatusServiceUnavailable
			}
		}

		if code != http.StatusOK {
			response.Error(c, code, "SERVICE_UNAVAILABLE", "Dependency unavailable", status)
			return
		}
		response.Success(c, code, status, nil)
	}
}
