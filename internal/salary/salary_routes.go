package salary

import (
	"github.com/abi765/payvault-app/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	jwtSecret string,
	rdb *redis.Client,
) {
	salaries := r.Group("/salary")
	salaries.Use(middleware.AuthMiddleware(jwtSecret))
	{
		salaries.GET("",
			middleware.RateLimitByUser(2, 5),
			handler.List,
		)
		salaries.GET("/months",
			middleware.RateLimitByUser(2, 5),
			handler.GetMonths,
		)
		salaries.GET("/stats",
			middleware.RateLimitByUser(2, 5),
			handler.GetStats,
		)
		salaries.GET("/employee/:employeeId/history",
			middleware.RateLimitByUser(2, 5),
			handler.EmployeeHistory,
		)
		salaries.POST("/generate",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware("admin", "user"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		salaries.POST("/bulk-status",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RoleMiddleware("admin", "user"),
			handler.BulkUpdateStatus,
		)
		salaries.PUT("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RoleMiddleware("admin", "user"),
			handler.UpdateStatus,
		)
	}
}
