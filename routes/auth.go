package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/OMPRAKASHKARRI/project-fruit-ordering-platform/controllers/admin"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", adminController.Login(deps.Auth))
		authGroup.POST("/logout", adminController.Logout(deps.Auth))
	}
}
