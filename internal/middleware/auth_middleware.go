package middleware

import (
	"errors"
	"fmt"
	"go-fichaje/internal/domain"
	"go-fichaje/internal/shared/apperror"
	"go-fichaje/internal/shared/contextutil"
	"go-fichaje/internal/shared/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
	ErrMissingUserID = apperror.New(apperror.CodeUnauthorized, "User ID not found in token", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, e *apperror.AppError) {
	response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	c.Abort()
}

// AuthMiddleware verifies HS256 tokens issued either by the auth provider or
// by a kiosk session. It sets user_id, employee_id and role on the gin context
// and propagates user and employee into the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return key, nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			userID, _ = claims["sub"].(string)
		}
		if userID == "" {
			abortWith(c, ErrMissingUserID)
			return
		}

		employeeID, _ := claims["employee_id"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			role = domain.RoleEmployee
		}

		c.Set("user_id", userID)
		c.Set("user_id_validated", userID)
		c.Set("employee_id", employeeID)
		c.Set("role", role)
		if role == domain.RoleKiosk {
			code, _ := claims["code"].(string)
			c.Set("kiosk_code", code)
		}

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithEmployeeID(ctx, employeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}
		abortWith(c, apperror.ErrForbidden)
	}
}
