package auth

import (
	"github.com/abi765/payvault-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)
		authGroup.GET("/me",
			middleware.AuthMiddleware(jwtSecret),
			handler.GetMe,
		)
	}
}
