package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"shortspro/config"
	"shortspro/internal/storage"
	"shortspro/log"

	"go.uber.org/zap"
)

type DependencyTier string

const (
	DependencyTierMust   DependencyTier = "must"
	DependencyTierShould DependencyTier = "should"
)

type DependencyStatus string

const (
	DependencyStatusOK      DependencyStatus = "ok"
	DependencyStatusMissing DependencyStatus = "missing"
)

type DependencySpec struct {
	ID             string
	Command        string
	ConfiguredPath string
	Tier           DependencyTier
	Hint           string
}

type DependencyState struct {
	DependencySpec
	ResolvedPath string
	Status       DependencyStatus
}

type PathResolver struct {
	LookPath func(file string) (string, error)
	AbsPath  func(path string) (string, error)
	Stat     func(name string) (os.FileInfo, error)
}

func NewPathResolver() PathResolver {
	return PathResolver{
		LookPath: exec.LookPath,
		AbsPath:  filepath.Abs,
		Stat:     os.Stat,
	}
}

// Resolve locates one external tool: an explicitly configured path wins,
// otherwise PATH lookup by command name.
func (r PathResolver) Resolve(spec DependencySpec) DependencyState {
	state := DependencyState{DependencySpec: spec, Status: DependencyStatusMissing}

	configured := strings.TrimSpace(spec.ConfiguredPath)
	if configured != "" && configured != spec.Command {
		if absPath, err := r.AbsPath(configured); err == nil {
			if _, statErr := r.Stat(absPath); statErr == nil {
				state.ResolvedPath = absPath
				state.Status = DependencyStatusOK
				return state
			}
		}
	}

	if found, err := r.LookPath(spec.Command); err == nil {
		state.ResolvedPath = found
		state.Status = DependencyStatusOK
	}
	return state
}

// FfmpegState and YtdlpState expose the last CheckDependency result so the
// health endpoint can report tool availability without re-probing PATH.
var (
	ffmpegAvailable bool
	ytdlpAvailable  bool
)

func FfmpegAvailable() bool { return ffmpegAvailable }
func YtdlpAvailable() bool  { return ytdlpAvailable }

// CheckDependency resolves ffmpeg and yt-dlp and records their paths for the
// render pipeline. ffmpeg is required; without yt-dlp analysis still works
// but renders will fail with a clear error.
func CheckDependency() error {
	resolver := NewPathResolver()

	ffmpeg := resolver.Resolve(DependencySpec{
		ID:             "ffmpeg",
		Command:        "ffmpeg",
		ConfiguredPath: config.Conf.App.FfmpegPath,
		Tier:           DependencyTierMust,
		Hint:           "install ffmpeg or set app.ffmpeg_path in the config",
	})
	ffmpegAvailable = ffmpeg.Status == DependencyStatusOK
	if ffmpegAvailable {
		storage.FfmpegPath = ffmpeg.ResolvedPath
		log.GetLogger().Info("ffmpeg detected", zap.String("path", ffmpeg.ResolvedPath))
	} else {
		return fmt.Errorf("ffmpeg not found: %s", ffmpeg.Hint)
	}

	ytdlp := resolver.Resolve(DependencySpec{
		ID:             "yt-dlp",
		Command:        "yt-dlp",
		ConfiguredPath: config.Conf.App.YtdlpPath,
		Tier:           DependencyTierShould,
		Hint:           "install yt-dlp or set app.ytdlp_path in the config",
	})
	ytdlpAvailable = ytdlp.Status == DependencyStatusOK
	if ytdlpAvailable {
		storage.YtdlpPath = ytdlp.ResolvedPath
		log.GetLogger().Info("yt-dlp detected", zap.String("path", ytdlp.ResolvedPath))
	} else {
		log.GetLogger().Warn("yt-dlp not found, rendering will be unavailable",
			zap.String("hint", ytdlp.Hint))
	}

	return nil
}
