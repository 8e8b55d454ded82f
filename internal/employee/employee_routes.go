package employee

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
	emps := r.Group("/emps")
	emps.Use(middleware.AuthMiddleware())
	emps.Use(middleware.ContextLogger(logger))
	emps.Use(middleware.CurrentCaller(resolver))
	{
		emps.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.List,
		)

		emps.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetByID,
		)

		emps.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		emps.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)

		emps.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			handler.Delete,
		)
	}
}
