package department

import (
	"go-orgadmin/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.CallerResolver,
	logger *zap.Logger,
) {
	deps := r.Group("/deps")
	deps.Use(middleware.AuthMiddleware())
	deps.Use(middleware.ContextLogger(logger))
	deps.Use(middleware.CurrentCaller(resolver))
	{
		deps.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		deps.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)

		deps.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		deps.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		deps.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		deps.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
