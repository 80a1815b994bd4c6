// Package ytdlp wraps the external yt-dlp tool for source video retrieval.
package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"shortspro/config"
	"shortspro/internal/storage"
	"shortspro/log"
	apperrors "shortspro/pkg/errors"

	"go.uber.org/zap"
)

// Desktop UA keeps upstream bot mitigation from rejecting the fetch.
const downloadUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Best mp4 at or below 1080p; transcoding to the vertical frame happens later.
const downloadFormat = "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

type Downloader struct {
	binPath         string
	proxy           string
	cookiesFile     string
	fragmentRetries int
	minOutputBytes  int64
}

func NewDownloader() *Downloader {
	return &Downloader{
		binPath:         storage.YtdlpPath,
		proxy:           config.Conf.App.Proxy,
		cookiesFile:     config.Conf.App.CookiesFile,
		fragmentRetries: config.Conf.Render.FragmentRetries,
		minOutputBytes:  config.Conf.Render.MinOutputBytes,
	}
}

func (d *Downloader) buildArgs(url, destPath string) []string {
	args := []string{
		"-f", downloadFormat,
		"-o", destPath,
		"--no-playlist",
		"--no-progress",
		"--retries", "3",
		"--fragment-retries", strconv.Itoa(d.fragmentRetries),
		"--add-header", "User-Agent:" + downloadUserAgent,
	}
	if d.proxy != "" {
		args = append(args, "--proxy", d.proxy)
	}
	if d.cookiesFile != "" {
		args = append(args, "--cookies", d.cookiesFile)
	}
	return append(args, url)
}

// Download fetches the full source video into destPath. Success is judged by
// the output file existing with a plausible size, not by the tool's exit
// code alone; partial fragment failures are retried by yt-dlp itself.
func (d *Downloader) Download(ctx context.Context, url, destPath string) error {
	cmd := exec.CommandContext(ctx, d.binPath, d.buildArgs(url, destPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.GetLogger().Error("yt-dlp download failed",
			zap.String("url", url), zap.String("output", tail(string(output), 2000)), zap.Error(err))
	}

	info, statErr := os.Stat(destPath)
	if statErr == nil && info.Size() >= d.minOutputBytes {
		return nil
	}

	if err == nil {
		err = fmt.Errorf("output file missing or undersized")
	}
	return apperrors.WrapWithDetail(apperrors.CodeDownloadFailed, "Video download failed",
		tail(string(output), 500), err)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
