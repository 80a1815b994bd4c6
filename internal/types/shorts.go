package types

import "context"

// ClipDurationSeconds is the fixed length of every generated short.
const ClipDurationSeconds = 15

// Category is the content taxonomy used to pick title and hashtag templates.
type Category string

const (
	CategoryGaming    Category = "gaming"
	CategoryMusic     Category = "music"
	CategorySports    Category = "sports"
	CategoryComedy    Category = "comedy"
	CategoryEducation Category = "education"
	CategoryGeneral   Category = "general"
)

// CategoryOrder fixes the tie-break order for classification.
var CategoryOrder = []Category{
	CategoryGaming,
	CategoryMusic,
	CategorySports,
	CategoryComedy,
	CategoryEducation,
	CategoryGeneral,
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskAssessment is the copyright-risk verdict for a video or clip.
type RiskAssessment struct {
	Level  RiskLevel `json:"risk_level"`
	Score  int       `json:"risk_score"`
	Status string    `json:"status"`
}

// VideoMetadata holds what the lookup service reports for a video. It is
// immutable once resolved; DurationSeconds drives all downstream timing math.
type VideoMetadata struct {
	VideoId         string `json:"video_id"`
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration"`
	Description     string `json:"description"`
	ViewCount       int64  `json:"view_count"`
	Uploader        string `json:"uploader"`
	ThumbnailUrl    string `json:"thumbnail"`
}

// ClipCandidate is one proposed short excerpt with synthesized metadata.
type ClipCandidate struct {
	Index             int            `json:"index"`
	StartTime         int            `json:"start_time"`
	Duration          int            `json:"duration"`
	Title             string         `json:"title"`
	Hashtags          []string       `json:"hashtags"`
	QualityScore      float64        `json:"quality_score"`
	EngagementScore   float64        `json:"engagement_score"`
	ViralityPotential string         `json:"virality_potential"`
	Category          Category       `json:"category"`
	Copyright         RiskAssessment `json:"copyright"`
	ThumbnailUrl      string         `json:"thumbnail,omitempty"`
	WatchUrl          string         `json:"youtube_url,omitempty"`
}

// AnalysisResult is a complete analysis of one source video.
type AnalysisResult struct {
	Video       VideoMetadata  `json:"video_info"`
	Clips       []ClipCandidate `json:"clips"`
	Category    Category       `json:"video_category"`
	OverallRisk RiskAssessment `json:"overall_copyright"`
}

// MetadataResolver resolves a user-supplied URL into video metadata.
type MetadataResolver interface {
	Resolve(ctx context.Context, url string) (*VideoMetadata, error)
}

// VideoDownloader fetches the full source video to a local path.
type VideoDownloader interface {
	Download(ctx context.Context, url, destPath string) error
}

// ClipTranscoder cuts one vertically formatted clip out of a local source file.
type ClipTranscoder interface {
	CutVertical(ctx context.Context, inputPath, outputPath string, startSec, durationSec int) error
}
