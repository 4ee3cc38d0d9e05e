package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-rooms-api/store"
)

type HealthController struct {
	store store.Gateway
	log   *zap.Logger
}

func NewHealthController(gw store.Gateway, log *zap.Logger) *HealthController {
	return &HealthController{store: gw, log: log}
}

func (ctrl *HealthController) Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the hotel management API")
}

// Health (GET /health) pings the database.
func (ctrl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := ctrl.store.Ping(ctx); err != nil {
		ctrl.log.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
