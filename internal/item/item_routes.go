package item

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
	items := r.Group("/items")
	items.Use(middleware.AuthMiddleware())
	items.Use(middleware.ContextLogger(logger))
	items.Use(middleware.CurrentCaller(resolver))
	{
		items.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		items.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		items.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		items.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		items.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
