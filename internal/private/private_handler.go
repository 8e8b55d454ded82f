package private

import (
	"net/http"

	"go-orgadmin/internal/shared/apperror"
	"go-orgadmin/internal/shared/response"
	"go-orgadmin/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes unauthenticated test fixtures for local development.
type Handler struct {
	users  user.Service
	logger *zap.Logger
}

func NewHandler(users user.Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("private.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("private.handler")
	}
	return &Handler{users: users, logger: l}
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req user.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http private create user validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	resp, err := h.users.Signup(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.JSON(http.StatusOK, resp)
}
