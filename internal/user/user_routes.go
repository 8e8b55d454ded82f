package user

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
	users := r.Group("/users")

	users.POST("/signup", middleware.RateLimitByIP(1, 3), handler.Signup)

	authed := users.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.Use(middleware.ContextLogger(logger))
	authed.Use(middleware.CurrentCaller(resolver))
	{
		authed.GET("", handler.List)
		authed.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		authed.GET("/me", handler.GetMe)
		authed.PATCH("/me", handler.UpdateMe)
		authed.PATCH("/me/password", handler.UpdatePassword)
		authed.DELETE("/me", handler.DeleteMe)
		authed.GET("/:id", handler.GetByID)
		authed.PATCH("/:id", handler.Update)
		authed.DELETE("/:id", middleware.RateLimitByUser(0.2, 1), handler.Delete)
	}
}
