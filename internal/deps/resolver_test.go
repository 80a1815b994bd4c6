package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeFileInfo struct{ name string }

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 1 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0o755 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }

func TestResolvePrefersConfiguredPath(t *testing.T) {
	resolver := PathResolver{
		LookPath: func(string) (string, error) { return "", errors.New("should not be called") },
		AbsPath:  func(p string) (string, error) { return filepath.Join("/abs", p), nil },
		Stat:     func(string) (os.FileInfo, error) { return fakeFileInfo{}, nil },
	}

	state := resolver.Resolve(DependencySpec{
		ID:             "ffmpeg",
		Command:        "ffmpeg",
		ConfiguredPath: "tools/ffmpeg",
	})

	assert.Equal(t, DependencyStatusOK, state.Status)
	assert.Equal(t, filepath.Join("/abs", "tools/ffmpeg"), state.ResolvedPath)
}

func TestResolveFallsBackToLookPath(t *testing.T) {
	resolver := PathResolver{
		LookPath: func(cmd string) (string, error) { return "/usr/bin/" + cmd, nil },
		AbsPath:  filepath.Abs,
		Stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
	}

	state := resolver.Resolve(DependencySpec{
		ID:             "yt-dlp",
		Command:        "yt-dlp",
		ConfiguredPath: "missing/yt-dlp",
	})

	assert.Equal(t, DependencyStatusOK, state.Status)
	assert.Equal(t, "/usr/bin/yt-dlp", state.ResolvedPath)
}

func TestResolveMissingEverywhere(t *testing.T) {
	resolver := PathResolver{
		LookPath: func(string) (string, error) { return "", errors.New("not found") },
		AbsPath:  filepath.Abs,
		Stat:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
	}

	state := resolver.Resolve(DependencySpec{ID: "ffmpeg", Command: "ffmpeg"})

	assert.Equal(t, DependencyStatusMissing, state.Status)
	assert.Empty(t, state.ResolvedPath)
}
