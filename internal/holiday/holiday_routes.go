package holiday

import (
	"go-leaveai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	holidays := r.Group("/holidays")
	holidays.Use(middleware.AuthMiddleware(jwtSecret))
	{
		holidays.GET("",
			middleware.RateLimitByUser(2, 10),
			handler.List,
		)

		holidays.POST("/import",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RoleMiddleware(middleware.RoleHRManager, middleware.RoleAdmin),
			handler.Import,
		)
	}
}
