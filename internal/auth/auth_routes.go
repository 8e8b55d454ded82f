package auth

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
	login := r.Group("/login")

	login.POST("/access-token", middleware.RateLimitByIP(2, 5), handler.Login)

	login.POST("/test-token",
		middleware.AuthMiddleware(),
		middleware.ContextLogger(logger),
		middleware.CurrentCaller(resolver),
		handler.TestToken,
	)
}
