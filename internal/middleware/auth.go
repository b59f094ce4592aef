package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/yukikurage/todolist-api/internal/auth"
	"github.com/yukikurage/todolist-api/internal/constants"
	apierrors "github.com/yukikurage/todolist-api/internal/errors"
)

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Validate(raw string) (jwt.MapClaims, error)
}

// RequireAuth rejects requests without a valid bearer token before any
// handler runs.
func RequireAuth(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := verifier.Validate(raw)
		if err != nil {
			logger.Info("rejected bearer token",
				"path", c.FullPath(),
				"request_id", c.GetString(constants.ContextKeyRequestID),
				"error", err,
			)
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}
