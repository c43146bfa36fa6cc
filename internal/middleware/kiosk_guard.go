package middleware

import (
	"context"
	"net/http"

	"go-fichaje/internal/domain"
	"go-fichaje/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

var ErrKioskSessionRevoked = apperror.New(apperror.CodeUnauthorized, "Kiosk session revoked", http.StatusUnauthorized)

// KioskCodeLookup returns the employee a code currently points at.
type KioskCodeLookup func(ctx context.Context, code string) (employeeID string, err error)

// KioskSessionGuard re-resolves the code behind a kiosk token on every request,
// so deactivating or reassigning a code ends its sessions. Other roles pass.
func KioskSessionGuard(lookup KioskCodeLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != domain.RoleKiosk {
			c.Next()
			return
		}

		code := c.GetString("kiosk_code")
		if code == "" {
			abortWith(c, ErrInvalidToken)
			return
		}

		employeeID, err := lookup(c.Request.Context(), code)
		if err != nil {
			if apperror.Is(err, apperror.CodeNotFound) {
				abortWith(c, ErrKioskSessionRevoked)
				return
			}
			httpErr := apperror.ToHTTP(err)
			abortWith(c, apperror.New(httpErr.Code, httpErr.Message, httpErr.Status))
			return
		}
		if employeeID != c.GetString("employee_id") {
			abortWith(c, ErrKioskSessionRevoked)
			return
		}
		c.Next()
	}
}
