package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-rooms-api/auth"
	"hotel-rooms-api/middleware"
	"hotel-rooms-api/utils"
)

type AuthController struct {
	Tokens *auth.TokenIssuer
	log    *zap.Logger
}

func NewAuthController(tokens *auth.TokenIssuer, log *zap.Logger) *AuthController {
	return &AuthController{Tokens: tokens, log: log}
}

// IssueToken (POST /api/v1/auth/token) runs behind Validate and Authenticate.
func (ctrl *AuthController) IssueToken(c *gin.Context) {
	user, ok := middleware.Identity(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError())
		return
	}

	token, err := ctrl.Tokens.Issue(user)
	if err != nil {
		ctrl.log.Error("issue token failed", zap.String("username", user.Username), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.MsgInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"tokenType": "Bearer",
		"expiresIn": int64(ctrl.Tokens.TTL().Seconds()),
	})
}
