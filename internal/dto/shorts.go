package dto

import "shortspro/internal/types"

// AnalyzeVideoReq starts an analysis of one hosted video.
type AnalyzeVideoReq struct {
	Url string `json:"url" binding:"required"`
}

type AnalyzeVideoResData struct {
	SessionId     string                `json:"session_id"`
	VideoInfo     types.VideoMetadata   `json:"video_info"`
	Clips         []types.ClipCandidate `json:"clips"`
	TotalClips    int                   `json:"total_clips"`
	VideoCategory types.Category        `json:"video_category"`
	Copyright     types.RiskAssessment  `json:"copyright"`
}

// GenerateShortReq renders a single clip from a stored analysis.
// ClipIndex is a pointer so index 0 survives the required binding.
type GenerateShortReq struct {
	SessionId string `json:"session_id" binding:"required"`
	ClipIndex *int   `json:"clip_index" binding:"required"`
}

type GenerateShortResData struct {
	Filename    string              `json:"filename"`
	DownloadUrl string              `json:"download_url"`
	SizeBytes   int64               `json:"size_bytes"`
	Clip        types.ClipCandidate `json:"clip"`
}

// BatchGenerateReq renders several clips from one source download.
type BatchGenerateReq struct {
	SessionId   string `json:"session_id" binding:"required"`
	ClipIndices []int  `json:"clip_indices" binding:"required"`
}

// BatchClipResult is the per-index outcome inside a batch; a failed clip never
// aborts its siblings.
type BatchClipResult struct {
	ClipIndex   int    `json:"clip_index"`
	Success     bool   `json:"success"`
	Filename    string `json:"filename,omitempty"`
	DownloadUrl string `json:"download_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

type BatchGenerateResData struct {
	Results         []BatchClipResult `json:"results"`
	TotalGenerated  int               `json:"total_generated"`
	ArchiveFilename string            `json:"archive_filename,omitempty"`
	ArchiveUrl      string            `json:"archive_url,omitempty"`
}

type HealthResData struct {
	Status          string `json:"status"`
	FfmpegAvailable bool   `json:"ffmpeg_available"`
	YtdlpAvailable  bool   `json:"ytdlp_available"`
	Timestamp       string `json:"timestamp"`
}
