package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"shortspro/internal/analysis"
	"shortspro/internal/dto"
	"shortspro/internal/storage"
	"shortspro/internal/types"
	"shortspro/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	qualityScoreBase   = 7.5
	qualityScoreSpread = 2.0
	viralityCap        = 95
)

// AnalyzeVideo resolves the video, classifies it, plans clip candidates,
// synthesizes their metadata and persists the whole analysis under a fresh
// session id.
func (s *Service) AnalyzeVideo(ctx context.Context, req dto.AnalyzeVideoReq) (*dto.AnalyzeVideoResData, error) {
	url := strings.TrimSpace(req.Url)
	log.GetLogger().Info("AnalyzeVideo", zap.String("url", url))

	meta, err := s.Resolver.Resolve(ctx, url)
	if err != nil {
		return nil, err
	}

	category, risk := analysis.Classify(meta.Title, meta.Description)
	offsets := analysis.PlanTimestamps(meta.DurationSeconds, analysis.TargetClipCount(meta.DurationSeconds))

	rng := s.NewRand()
	synth := analysis.NewSynthesizerWithRand(rng)

	clips := make([]types.ClipCandidate, 0, len(offsets))
	for i, offset := range offsets {
		title, hashtags := synth.Synthesize(category, meta.Title, meta.Description)

		quality := math.Round((qualityScoreBase+rng.Float64()*qualityScoreSpread)*10) / 10
		virality := int(quality * 10)
		if virality > viralityCap {
			virality = viralityCap
		}

		clips = append(clips, types.ClipCandidate{
			Index:             i,
			StartTime:         offset,
			Duration:          types.ClipDurationSeconds,
			Title:             title,
			Hashtags:          hashtags,
			QualityScore:      quality,
			EngagementScore:   math.Round(quality*10*10) / 10,
			ViralityPotential: fmt.Sprintf("%d%%", virality),
			Category:          category,
			Copyright:         risk,
			ThumbnailUrl:      fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", meta.VideoId),
			WatchUrl:          watchUrlAt(url, offset),
		})
	}

	result := types.AnalysisResult{
		Video:       *meta,
		Clips:       clips,
		Category:    category,
		OverallRisk: risk,
	}

	sessionId := uuid.New().String()
	if err := storage.SaveSession(sessionId, url, &result); err != nil {
		return nil, err
	}

	log.GetLogger().Info("AnalyzeVideo done",
		zap.String("session_id", sessionId),
		zap.String("video_id", meta.VideoId),
		zap.Int("clips", len(clips)),
		zap.String("category", string(category)))

	return &dto.AnalyzeVideoResData{
		SessionId:     sessionId,
		VideoInfo:     *meta,
		Clips:         clips,
		TotalClips:    len(clips),
		VideoCategory: category,
		Copyright:     risk,
	}, nil
}

func watchUrlAt(url string, startSec int) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%st=%ds", url, sep, startSec)
}
