package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"shortspro/config"
	"shortspro/internal/deps"
	"shortspro/internal/router"
	"shortspro/internal/storage"
	"shortspro/internal/sweeper"
	"shortspro/log"

	"github.com/gin-gonic/gin"
)

func main() {
	log.InitLogger()
	defer log.GetLogger().Sync()

	created, err := config.LoadOrCreateConfig()
	if err != nil {
		log.GetLogger().Error("failed to load config", zap.Error(err))
		return
	}
	if created {
		log.GetLogger().Info("created default config file, fill in youtube.api_key and restart")
		return
	}

	if err = config.CheckConfig(); err != nil {
		log.GetLogger().Error("config check failed", zap.Error(err))
		return
	}

	storage.InitDB()

	if err = deps.CheckDependency(); err != nil {
		log.GetLogger().Error("dependency check failed", zap.Error(err))
		return
	}

	sw := sweeper.New(sweeper.Config{
		MaxAge:   time.Duration(config.Conf.Session.MaxAgeHours) * time.Hour,
		Interval: time.Duration(config.Conf.Session.SweepIntervalMinute) * time.Minute,
	})
	defer sw.Close()

	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()
	router.SetupRouter(engine)

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	log.GetLogger().Info("server starting", zap.String("addr", addr))
	if err = engine.Run(addr); err != nil {
		log.GetLogger().Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
