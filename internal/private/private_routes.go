package private

import "github.com/gin-gonic/gin"

// RegisterRoutes must only be called when the app runs in a local
// environment: the endpoints skip authentication entirely.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	priv := r.Group("/private")

	priv.POST("/users/", handler.CreateUser)
}
