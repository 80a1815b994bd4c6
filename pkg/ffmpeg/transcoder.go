// Package ffmpeg wraps the external media transcoder for clip rendering.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"shortspro/config"
	"shortspro/internal/storage"
	"shortspro/log"
	apperrors "shortspro/pkg/errors"

	"go.uber.org/zap"
)

// verticalFilter letterboxes any aspect ratio into a 1080x1920 frame.
const verticalFilter = "scale=1080:1920:force_original_aspect_ratio=decrease,pad=1080:1920:(ow-iw)/2:(oh-ih)/2:black"

type Transcoder struct {
	binPath        string
	timeout        time.Duration
	minOutputBytes int64
}

func NewTranscoder() *Transcoder {
	return &Transcoder{
		binPath:        storage.FfmpegPath,
		timeout:        time.Duration(config.Conf.Render.TranscodeTimeoutSecond) * time.Second,
		minOutputBytes: config.Conf.Render.MinOutputBytes,
	}
}

func buildCutArgs(inputPath, outputPath string, startSec, durationSec int) []string {
	return []string{
		"-y",
		"-ss", strconv.Itoa(startSec),
		"-t", strconv.Itoa(durationSec),
		"-i", inputPath,
		"-vf", verticalFilter,
		"-c:v", "libx264",
		"-preset", "fast",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		outputPath,
	}
}

// CutVertical renders one vertically padded clip from the local source file.
// The invocation runs under a bounded wall-clock timeout; exceeding it is a
// transcode failure, not a crash. Success requires a zero exit status and an
// output file above the minimum size.
func (t *Transcoder) CutVertical(ctx context.Context, inputPath, outputPath string, startSec, durationSec int) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.binPath, buildCutArgs(inputPath, outputPath, startSec, durationSec)...)
	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.GetLogger().Error("ffmpeg transcode timed out",
			zap.String("input", inputPath), zap.Duration("timeout", t.timeout))
		return apperrors.Wrap(apperrors.CodeTranscodeFailed,
			fmt.Sprintf("Clip transcode exceeded %s timeout", t.timeout), ctx.Err())
	}
	if err != nil {
		log.GetLogger().Error("ffmpeg transcode failed",
			zap.String("input", inputPath), zap.String("output", tail(string(output), 2000)), zap.Error(err))
		return apperrors.WrapWithDetail(apperrors.CodeTranscodeFailed, "Clip transcode failed",
			tail(string(output), 500), err)
	}

	info, statErr := os.Stat(outputPath)
	if statErr != nil || info.Size() < t.minOutputBytes {
		return apperrors.Wrap(apperrors.CodeTranscodeFailed,
			"Clip transcode produced no usable output", statErr)
	}
	return nil
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
