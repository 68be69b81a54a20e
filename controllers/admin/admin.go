package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/middleware"
	"github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/store"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !auth.Login(middleware.SessionID(c), req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
	}
}

// POST /auth/logout
func Logout(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout(middleware.SessionID(c))
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
