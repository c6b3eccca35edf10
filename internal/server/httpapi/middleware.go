package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/avasquez/softjobs/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// emailContextKey is the gin context key under which the verified identity
// claim is stored for downstream handlers.
const emailContextKey = "auth.email"

// EmailFromContext extracts the authenticated email set by requireAuth.
func EmailFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(emailContextKey)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}

// requireAuth extracts the bearer token from the Authorization header,
// verifies signature and expiry, and attaches the identity claim to the
// request context. Requests without a valid token never reach the handler.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token not provided"})
			return
		}

		email, err := auth.GetEmailFromToken(parts[1], s.jwtSecret)
		if err != nil {
			// expired and malformed tokens are distinguished in logs only,
			// never in the response
			s.logger.Debug(c.Request.Context(), "token rejected", "reason", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(emailContextKey, email)
		c.Next()
	}
}

// requestLogger logs one line per handled request. Bodies are never logged;
// they may carry credentials.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.logger.Info(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
