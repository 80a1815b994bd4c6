package handler

import (
	"shortspro/internal/dto"
	"shortspro/internal/response"
	"shortspro/log"
	apperrors "shortspro/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h Handler) AnalyzeVideo(c *gin.Context) {
	var req dto.AnalyzeVideoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("AnalyzeVideo param error", zap.Error(err))
		response.Error(c, apperrors.CodeInvalidParams, "params error: "+err.Error())
		return
	}

	data, err := h.Service.AnalyzeVideo(c.Request.Context(), req)
	if err != nil {
		log.GetLogger().Error("AnalyzeVideo failed", zap.Error(err))
		response.ErrorResponse(c, err)
		return
	}

	response.Success(c, data)
}

func (h Handler) GenerateShort(c *gin.Context) {
	var req dto.GenerateShortReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("GenerateShort param error", zap.Error(err))
		response.Error(c, apperrors.CodeInvalidParams, "params error: "+err.Error())
		return
	}

	data, err := h.Service.GenerateShort(c.Request.Context(), req.SessionId, *req.ClipIndex)
	if err != nil {
		log.GetLogger().Error("GenerateShort failed", zap.Error(err))
		response.ErrorResponse(c, err)
		return
	}

	response.Success(c, data)
}

func (h Handler) BatchGenerate(c *gin.Context) {
	var req dto.BatchGenerateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.GetLogger().Error("BatchGenerate param error", zap.Error(err))
		response.Error(c, apperrors.CodeInvalidParams, "params error: "+err.Error())
		return
	}

	data, err := h.Service.BatchGenerate(c.Request.Context(), req.SessionId, req.ClipIndices)
	if err != nil {
		log.GetLogger().Error("BatchGenerate failed", zap.Error(err))
		response.ErrorResponse(c, err)
		return
	}

	response.Success(c, data)
}
