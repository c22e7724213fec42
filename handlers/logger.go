package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or creates a new one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	logger, _ := zap.NewProduction()
	return logger
}

// requesterID pulls the authenticated user ID placed in the context by
// the auth middleware. The second return is false when no identity was
// resolved, in which case a 401 has already been written.
func requesterID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated identity"})
		return "", false
	}
	idStr, ok := id.(string)
	if !ok || idStr == "" {
		getLogger(c).Error("Invalid user ID type in context", zap.Any("userID", id))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No authenticated identity"})
		return "", false
	}
	return idStr, true
}
