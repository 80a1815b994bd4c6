package log

import (
	"errors"
	"path/filepath"
	"testing"

	"shortspro/internal/appdirs"
)

func setAppDirsResolverForTest(t *testing.T, resolver func() (appdirs.Paths, error)) {
	t.Helper()

	originalResolver := appDirsResolver
	appDirsResolver = resolver
	t.Cleanup(func() {
		appDirsResolver = originalResolver
	})
}

func TestResolveLogDir(t *testing.T) {
	t.Run("uses resolved log dir", func(t *testing.T) {
		expectedDir := filepath.Join("tmp", "logs")
		setAppDirsResolverForTest(t, func() (appdirs.Paths, error) {
			return appdirs.Paths{LogDir: expectedDir}, nil
		})

		logDir, err := ResolveLogDir()
		if err != nil {
			t.Fatalf("ResolveLogDir() returned unexpected error: %v", err)
		}
		if logDir != expectedDir {
			t.Fatalf("ResolveLogDir() = %q, want %q", logDir, expectedDir)
		}
	})

	t.Run("falls back to current dir when empty", func(t *testing.T) {
		setAppDirsResolverForTest(t, func() (appdirs.Paths, error) {
			return appdirs.Paths{LogDir: "   "}, nil
		})

		logDir, err := ResolveLogDir()
		if err != nil {
			t.Fatalf("ResolveLogDir() returned unexpected error: %v", err)
		}
		if logDir != "." {
			t.Fatalf("ResolveLogDir() = %q, want %q", logDir, ".")
		}
	})

	t.Run("propagates resolver error", func(t *testing.T) {
		wantErr := errors.New("resolver broken")
		setAppDirsResolverForTest(t, func() (appdirs.Paths, error) {
			return appdirs.Paths{}, wantErr
		})

		if _, err := ResolveLogDir(); !errors.Is(err, wantErr) {
			t.Fatalf("ResolveLogDir() error = %v, want %v", err, wantErr)
		}
	})
}

func TestResolveLogFilePath(t *testing.T) {
	setAppDirsResolverForTest(t, func() (appdirs.Paths, error) {
		return appdirs.Paths{LogDir: filepath.Join("var", "logs")}, nil
	})

	got, err := ResolveLogFilePath()
	if err != nil {
		t.Fatalf("ResolveLogFilePath() returned unexpected error: %v", err)
	}
	want := filepath.Join("var", "logs", logFileName)
	if got != want {
		t.Fatalf("ResolveLogFilePath() = %q, want %q", got, want)
	}
}
