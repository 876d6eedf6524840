package handler

import (
	"bookmarks_api/internal/auth"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	identityKey     = "identity"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// AuthMiddleware rejects the request with 401 unless it carries a valid
// bearer token. On success the resolved auth.Identity is stored on the context.
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

			return
		}

		identity, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			newErrorResponse(c, http.StatusUnauthorized, msgUnauthorized)

			return
		}

		c.Set(identityKey, identity)

		c.Next()
	}
}

// identityFrom returns the caller stored by AuthMiddleware.
func identityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()

		log.Info("request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			slog.Any("panic", recovered),
			slog.String("request_id", c.GetString(requestIDKey)),
		)

		newErrorResponse(c, http.StatusInternalServerError, msgInternal)
	})
}

// requestLog returns h.log scoped to op and the current request id.
func (h *Handler) requestLog(c *gin.Context, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", c.GetString(requestIDKey)),
	)
}
