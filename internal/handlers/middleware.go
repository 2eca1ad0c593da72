package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "session"
	userIDKey         = "userId"
)

// sessionToken extracts the token from the session cookie, falling back to
// an Authorization bearer header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// sessionMiddleware resolves the session once per request and injects the
// user id into the request context. Protected handlers never see an
// anonymous caller.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing session",
		})
		return
	}

	userID, err := h.services.Sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired session",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID reads the user id injected by sessionMiddleware.
func currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
