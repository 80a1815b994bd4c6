package service

import (
	"math/rand"
	"time"

	"shortspro/config"
	"shortspro/internal/types"
	"shortspro/pkg/ffmpeg"
	"shortspro/pkg/youtube"
	"shortspro/pkg/ytdlp"
)

// Service wires the pipeline's external collaborators. Fields are exported so
// tests can substitute mocks.
type Service struct {
	Resolver   types.MetadataResolver
	Downloader types.VideoDownloader
	Transcoder types.ClipTranscoder

	// NewRand supplies the per-request pseudo-random source used for clip
	// metadata synthesis; seedable in tests.
	NewRand func() *rand.Rand
}

func NewService() *Service {
	return &Service{
		Resolver: youtube.NewClient(
			config.Conf.Youtube.Endpoint,
			config.Conf.Youtube.ApiKey,
			config.Conf.App.Proxy,
		),
		Downloader: ytdlp.NewDownloader(),
		Transcoder: ffmpeg.NewTranscoder(),
		NewRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}
