package middleware

import (
	"context"

	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"
	"go-orgadmin/internal/shared/contextutil"
	"go-orgadmin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CallerResolver loads the caller identity for a token subject. Implemented
// by the auth service so deactivated users are rejected on their next
// request, not at token expiry.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID string) (ownership.Caller, error)
}

// CurrentCaller resolves the user ID set by AuthMiddleware into an
// ownership.Caller and stores it for handlers.
func CurrentCaller(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		caller, err := resolver.ResolveCaller(c.Request.Context(), userID)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set(ownership.ContextKey, caller)

		ctx := contextutil.WithUserID(c.Request.Context(), caller.ID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
