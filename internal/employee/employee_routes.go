package employee

import (
	"github.com/abi765/payvault-app/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(jwtSecret))
	{
		employees.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.GetAll,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin", "user"),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin", "user"),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware("admin"),
			handler.Delete,
		)
	}
}
