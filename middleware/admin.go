package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

// RequireAdmin blocks sessions that have not logged in as admin.
func RequireAdmin(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.IsAdmin(SessionID(c)) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
