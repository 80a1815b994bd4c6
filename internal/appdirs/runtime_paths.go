package appdirs

import (
	"path/filepath"
	"strings"
)

const (
	dbFileName = "shortspro.db"
)

// DBPathFor returns the sqlite session database location.
func DBPathFor(paths Paths) string {
	return filepath.Join(normalizeDataDir(paths.DataDir), dbFileName)
}

// OutputDirFor returns the directory rendered shorts are published to.
func OutputDirFor(paths Paths) string {
	return normalizeOutputDir(paths.OutputDir)
}

// WorkDirFor returns the scratch directory for per-request temp files.
func WorkDirFor(paths Paths) string {
	if strings.TrimSpace(paths.WorkDir) == "" {
		return "work"
	}
	return paths.WorkDir
}

func ResolveOutputDir() (string, error) {
	paths, err := Resolve()
	if err != nil {
		return "", err
	}
	return OutputDirFor(paths), nil
}

func ResolveWorkDir() (string, error) {
	paths, err := Resolve()
	if err != nil {
		return "", err
	}
	return WorkDirFor(paths), nil
}

func normalizeOutputDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "downloads"
	}
	return dir
}

func normalizeDataDir(dir string) string {
	if strings.TrimSpace(dir) == "" {
		return "data"
	}
	return dir
}
