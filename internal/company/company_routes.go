package company

import (
	"go-leaveai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	company := r.Group("/companies")
	company.Use(middleware.AuthMiddleware(jwtSecret))
	{
		company.GET("/me/policy",
			middleware.RateLimitByUser(2, 10),
			handler.GetPolicy,
		)

		company.PUT("/me/policy",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware(middleware.RoleHRManager, middleware.RoleAdmin),
			handler.UpdatePolicy,
		)
	}
}
