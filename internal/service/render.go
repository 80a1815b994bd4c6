package service

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"shortspro/config"
	"shortspro/internal/appdirs"
	"shortspro/internal/dto"
	"shortspro/internal/storage"
	"shortspro/internal/types"
	"shortspro/log"
	apperrors "shortspro/pkg/errors"
	"shortspro/pkg/util"

	"go.uber.org/zap"
)

const archiveEntryNameMax = 80

// GenerateShort renders a single clip: session lookup, index validation, one
// source download into a scoped temp dir, one transcode, output verification.
// The temp dir is removed on every exit path.
func (s *Service) GenerateShort(ctx context.Context, sessionId string, clipIndex int) (*dto.GenerateShortResData, error) {
	record, result, err := storage.GetSession(sessionId)
	if err != nil {
		return nil, err
	}
	if clipIndex < 0 || clipIndex >= len(result.Clips) {
		return nil, apperrors.ErrInvalidClipIndex
	}
	clip := result.Clips[clipIndex]

	tempDir, err := makeRenderTempDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	sourcePath := filepath.Join(tempDir, "source.mp4")
	if err := s.Downloader.Download(ctx, record.SourceUrl, sourcePath); err != nil {
		return nil, err
	}

	outputDir, err := ensureOutputDir()
	if err != nil {
		return nil, err
	}
	filename := outputFilename(result.Video.VideoId, clipIndex)
	outputPath := filepath.Join(outputDir, filename)

	if err := s.Transcoder.CutVertical(ctx, sourcePath, outputPath, clip.StartTime, clip.Duration); err != nil {
		return nil, err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeTranscodeFailed, "Rendered output missing", err)
	}

	log.GetLogger().Info("GenerateShort done",
		zap.String("session_id", sessionId),
		zap.Int("clip_index", clipIndex),
		zap.String("filename", filename),
		zap.Int64("size", info.Size()))

	return &dto.GenerateShortResData{
		Filename:    filename,
		DownloadUrl: "/download/" + filename,
		SizeBytes:   info.Size(),
		Clip:        clip,
	}, nil
}

// BatchGenerate renders several clips from a single source download. Every
// requested index resolves to its own outcome; one clip failing never aborts
// its siblings. Transcodes run in parallel under a bounded limit once the
// download has completed. When more than one clip succeeds the outputs are
// bundled into a zip archive named by each clip's sanitized title.
func (s *Service) BatchGenerate(ctx context.Context, sessionId string, clipIndices []int) (*dto.BatchGenerateResData, error) {
	if len(clipIndices) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidParams, "clip_indices must not be empty")
	}

	record, result, err := storage.GetSession(sessionId)
	if err != nil {
		return nil, err
	}

	tempDir, err := makeRenderTempDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tempDir)

	results := make([]dto.BatchClipResult, len(clipIndices))
	for i, idx := range clipIndices {
		results[i] = dto.BatchClipResult{ClipIndex: idx}
	}

	// One download for the whole batch; it must finish before any transcode
	// starts.
	sourcePath := filepath.Join(tempDir, "source.mp4")
	if err := s.Downloader.Download(ctx, record.SourceUrl, sourcePath); err != nil {
		for i := range results {
			results[i].Error = apperrors.GetMessage(err)
		}
		return &dto.BatchGenerateResData{Results: results}, nil
	}

	outputDir, err := ensureOutputDir()
	if err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.Conf.Render.MaxConcurrentTranscodes)

	for i, clipIndex := range clipIndices {
		i, clipIndex := i, clipIndex
		if clipIndex < 0 || clipIndex >= len(result.Clips) {
			results[i].Error = apperrors.ErrInvalidClipIndex.Message
			continue
		}

		clip := result.Clips[clipIndex]
		group.Go(func() error {
			filename := outputFilename(result.Video.VideoId, clipIndex)
			outputPath := filepath.Join(outputDir, filename)

			if err := s.Transcoder.CutVertical(groupCtx, sourcePath, outputPath, clip.StartTime, clip.Duration); err != nil {
				log.GetLogger().Warn("batch clip failed",
					zap.String("session_id", sessionId),
					zap.Int("clip_index", clipIndex),
					zap.Error(err))
				results[i].Error = apperrors.GetMessage(err)
				return nil
			}

			results[i].Success = true
			results[i].Filename = filename
			results[i].DownloadUrl = "/download/" + filename
			return nil
		})
	}
	// Goroutines record their own failures; the group never returns an error.
	_ = group.Wait()

	data := &dto.BatchGenerateResData{Results: results}
	for i := range results {
		if results[i].Success {
			data.TotalGenerated++
		}
	}

	if data.TotalGenerated > 1 {
		archiveName, err := s.buildArchive(outputDir, result, clipIndices, results)
		if err != nil {
			log.GetLogger().Warn("archive bundling failed", zap.Error(err))
		} else {
			data.ArchiveFilename = archiveName
			data.ArchiveUrl = "/download/" + archiveName
		}
	}

	log.GetLogger().Info("BatchGenerate done",
		zap.String("session_id", sessionId),
		zap.Int("requested", len(clipIndices)),
		zap.Int("generated", data.TotalGenerated))
	return data, nil
}

// buildArchive bundles every successful output into one zip. Entry names are
// the sanitized clip titles, uniquified by index on collision.
func (s *Service) buildArchive(outputDir string, result *types.AnalysisResult, clipIndices []int, results []dto.BatchClipResult) (string, error) {
	archiveName := fmt.Sprintf("shorts_%s_%d.zip", result.Video.VideoId, time.Now().UnixNano())
	archiveFile, err := os.Create(filepath.Join(outputDir, archiveName))
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeArchiveFailed, "Failed to create archive", err)
	}
	defer archiveFile.Close()

	writer := zip.NewWriter(archiveFile)
	defer writer.Close()

	used := map[string]bool{}
	for i, outcome := range results {
		if !outcome.Success {
			continue
		}

		entryName := util.SanitizeFilename(result.Clips[clipIndices[i]].Title, archiveEntryNameMax)
		if used[entryName] {
			entryName = fmt.Sprintf("%s_%d", entryName, clipIndices[i])
		}
		used[entryName] = true

		if err := addArchiveEntry(writer, filepath.Join(outputDir, outcome.Filename), entryName+".mp4"); err != nil {
			return "", err
		}
	}

	return archiveName, nil
}

func addArchiveEntry(writer *zip.Writer, sourcePath, entryName string) error {
	file, err := os.Open(sourcePath)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeArchiveFailed, "Failed to read rendered clip", err)
	}
	defer file.Close()

	entry, err := writer.Create(entryName)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeArchiveFailed, "Failed to add archive entry", err)
	}
	_, err = io.Copy(entry, file)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeArchiveFailed, "Failed to write archive entry", err)
	}
	return nil
}

func makeRenderTempDir() (string, error) {
	workDir, err := appdirs.ResolveWorkDir()
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeFileWriteError, "Failed to resolve work dir", err)
	}
	tempDir := filepath.Join(workDir, "render_"+util.GenerateRandStringWithUpperLowerNum(8))
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.CodeFileWriteError, "Failed to create temp dir", err)
	}
	return tempDir, nil
}

func ensureOutputDir() (string, error) {
	outputDir, err := appdirs.ResolveOutputDir()
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeFileWriteError, "Failed to resolve output dir", err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.CodeFileWriteError, "Failed to create output dir", err)
	}
	return outputDir, nil
}

// outputFilename is collision-free across concurrent requests: the session's
// video id plus clip index plus a nanosecond timestamp.
func outputFilename(videoId string, clipIndex int) string {
	return fmt.Sprintf("short_%s_%d_%d.mp4", videoId, clipIndex, time.Now().UnixNano())
}
