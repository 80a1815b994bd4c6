package handler

import (
	"time"

	"shortspro/config"
	"shortspro/internal/deps"
	"shortspro/internal/dto"
	"shortspro/internal/response"
	"shortspro/internal/storage"
	"shortspro/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Health reports service status plus external tool availability. It also
// takes the opportunity to drop expired sessions, so a deployment polled by a
// load balancer stays clean even between sweeper ticks.
func (h Handler) Health(c *gin.Context) {
	maxAge := time.Duration(config.Conf.Session.MaxAgeHours) * time.Hour
	if removed, err := storage.ExpireSessionsOlderThan(maxAge); err != nil {
		log.GetLogger().Warn("session expiry during health check failed", zap.Error(err))
	} else if removed > 0 {
		log.GetLogger().Info("expired sessions removed", zap.Int64("count", removed))
	}

	response.Success(c, dto.HealthResData{
		Status:          "healthy",
		FfmpegAvailable: deps.FfmpegAvailable(),
		YtdlpAvailable:  deps.YtdlpAvailable(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
