package middleware

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"hotel-rooms-api/auth"
	"hotel-rooms-api/models"
	"hotel-rooms-api/utils"
)

const IdentityKey = "identity"

// RequireCredentials reads the credentials from the JSON body and runs them
// through p. The body stays readable for the route handler. Passwords are
// never logged.
func RequireCredentials(p auth.Pipeline, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.Request
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			log.Info("credentials payload rejected", zap.String("path", c.FullPath()), zap.Error(err))
			utils.AbortWithError(c, utils.BindError(err))
			return
		}

		if err := p.Run(c.Request.Context(), &req); err != nil {
			log.Info("request rejected",
				zap.String("path", c.FullPath()),
				zap.String("username", req.Username),
				zap.Error(err),
			)
			utils.AbortWithError(c, err)
			return
		}

		if req.Identity != nil {
			c.Set(IdentityKey, req.Identity)
		}
		c.Next()
	}
}

// Identity returns the user resolved by the pipeline, if any.
func Identity(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
