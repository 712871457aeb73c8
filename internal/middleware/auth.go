package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noteagent/noteagent/internal/auth"
	"github.com/noteagent/noteagent/internal/store"
	"github.com/noteagent/noteagent/internal/types"
)

type AuthenticatedUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthMiddleware verifies the bearer token and resolves its subject to an
// existing user before the request reaches a handler.
func AuthMiddleware(tokens *auth.TokenService, s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		userID, err := tokens.Verify(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := s.GetUser(ctx.Request.Context(), userID)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Email: user.Email,
		})
		ctx.Next()
	}
}
