package leave

import (
	"go-leaveai/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string, redisClient *redis.Client) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	{
		leaves.GET("/working-days/preview",
			middleware.RateLimitByUser(5, 20),
			handler.PreviewWorkingDays,
		)
		leaves.GET("/:id", handler.GetByID)
		leaves.GET("/:id/audit", handler.GetAuditTrail)

		leaves.POST("/:id/cancel",
			middleware.RateLimitByUser(1, 5),
			handler.Cancel,
		)

		hr := leaves.Group("")
		hr.Use(middleware.RoleMiddleware(middleware.RoleHRManager, middleware.RoleAdmin))
		{
			hr.POST("/:id/process",
				middleware.RateLimitByUser(2, 10),
				handler.Process,
			)

			idempotent := hr.Group("")
			if redisClient != nil {
				idempotent.Use(middleware.Idempotency(redisClient))
			}
			idempotent.POST("/:id/approve", handler.Approve)
			idempotent.POST("/:id/reject", handler.Reject)
		}
	}
}
