package router

import (
	"os"

	"shortspro/internal/handler"
	"shortspro/log"

	"github.com/gin-gonic/gin"
)

func SetupRouter(r *gin.Engine) {
	hdl := handler.NewHandler()

	api := r.Group("/api")
	{
		api.POST("/analyze", hdl.AnalyzeVideo)
		api.POST("/generate", hdl.GenerateShort)
		api.POST("/batch-generate", hdl.BatchGenerate)
		api.GET("/health", hdl.Health)
	}

	r.GET("/download/:filename", hdl.DownloadFile)
	r.HEAD("/download/:filename", hdl.DownloadFile)

	if _, err := os.Stat("static"); err == nil {
		log.GetLogger().Info("Using local static directory")
		r.Static("/static", "static")
	}
}
