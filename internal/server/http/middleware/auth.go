package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
	"github.com/avolkov/clientbase/internal/domain/model"
	"github.com/avolkov/clientbase/internal/server/http/dto"
)

// CurrentUserContextKey is a gin context key for the authenticated user.
const CurrentUserContextKey = "currentUser"

// Authenticator resolves bearer tokens into users for the session filter.
type Authenticator interface {
	ParseToken(token string) (string, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
}

// Authenticate inspects the Authorization header and, when it carries a
// valid bearer token for a known user, attaches that user to the request
// context. Requests without a usable token pass through unauthenticated;
// rejection is left to RequireAuth on protected routes.
func Authenticate(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.Next()
			return
		}

		token := strings.TrimSpace(header[7:])
		subject, err := auth.ParseToken(token)
		if err != nil || subject == "" {
			c.Next()
			return
		}

		if _, exists := c.Get(CurrentUserContextKey); exists {
			c.Next()
			return
		}

		user, err := auth.UserByEmail(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.CommonResponse{
				Status:  http.StatusInternalServerError,
				Code:    "INTERNAL_ERROR",
				Message: "Internal server error",
			})
			return
		}

		c.Set(CurrentUserContextKey, user)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CurrentUserContextKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.CommonResponse{
				Status:  http.StatusUnauthorized,
				Code:    "UNAUTHORIZED",
				Message: "Full authentication is required to access this resource",
			})
			return
		}
		c.Next()
	}
}
