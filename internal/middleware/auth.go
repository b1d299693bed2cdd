package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/currency_rates_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var errNoCredentials = errors.New("authorization header missing")

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT bearer token.
func AuthMiddleware(jwtSecret, jwtIssuer string) gin.HandlerFunc {
	return authMiddleware(jwtSecret, jwtIssuer, true)
}

// OptionalAuthMiddleware authenticates the caller when an Authorization header is present
// and lets anonymous requests through. A present but invalid token is still rejected.
func OptionalAuthMiddleware(jwtSecret, jwtIssuer string) gin.HandlerFunc {
	return authMiddleware(jwtSecret, jwtIssuer, false)
}

func authMiddleware(jwtSecret, jwtIssuer string, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve logger from the standard context
		logger := GetLoggerFromCtx(c.Request.Context())

		// Already authenticated by an outer group.
		if _, ok := c.Request.Context().Value(userIDKey).(int64); ok {
			c.Next()
			return
		}

		userID, err := authenticate(c.GetHeader("Authorization"), jwtSecret, jwtIssuer)
		if errors.Is(err, errNoCredentials) && !required {
			c.Next()
			return
		}
		if err != nil {
			logger.Warn("Authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": authErrorMessage(err)})
			return
		}

		// Add user ID to the logger and the request context
		enrichedLogger := logger.With(slog.Int64("user_id", userID))
		ctx := WithLogger(WithUserID(c.Request.Context(), userID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func authenticate(header, jwtSecret, jwtIssuer string) (int64, error) {
	if header == "" {
		return 0, errNoCredentials
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, errors.New("authorization header format must be Bearer {token}")
	}

	return utils.ParseAccessToken(parts[1], jwtSecret, jwtIssuer)
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, errNoCredentials):
		return "Authentication credentials were not provided."
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	case strings.HasPrefix(err.Error(), "authorization header format"):
		return "Authorization header format must be Bearer {token}"
	default:
		return "Invalid token"
	}
}
