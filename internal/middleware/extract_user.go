package middleware

import (
	"go-fichaje/internal/shared/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireEmployee rejects tokens that do not identify an employee, such as
// admin tokens without an employee_id claim.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("employee_id") == "" {
			abortWith(c, apperror.New(apperror.CodeForbidden, "Token is not bound to an employee", http.StatusForbidden))
			return
		}
		c.Next()
	}
}
