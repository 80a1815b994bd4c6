package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"shortspro/internal/appdirs"
	"shortspro/internal/response"
	apperrors "shortspro/pkg/errors"

	"github.com/gin-gonic/gin"
)

var appDirsResolver = appdirs.Resolve

// DownloadFile serves a rendered clip or archive from the output dir. Only
// plain filenames are accepted; anything that resolves outside the output dir
// is rejected.
func (h Handler) DownloadFile(c *gin.Context) {
	requested := c.Param("filename")
	localPath, ok := resolveDownloadPath(requested)
	if !ok {
		response.Error(c, apperrors.CodeInvalidParams, "Invalid file path")
		return
	}

	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, response.FromError(apperrors.ErrFileNotFound))
		return
	}
	c.FileAttachment(localPath, filepath.Base(localPath))
}

func resolveDownloadPath(requested string) (string, bool) {
	requested = strings.TrimSpace(requested)
	requested = strings.Trim(requested, "/")
	if requested == "" || hasParentTraversal(requested) {
		return "", false
	}
	// Rendered outputs are flat files; no subdirectories are served.
	if strings.ContainsAny(requested, "/\\") {
		return "", false
	}

	dirs, err := appDirsResolver()
	if err != nil {
		return "", false
	}
	root := appdirs.OutputDirFor(dirs)

	candidate := filepath.Clean(filepath.Join(root, requested))
	if !isPathWithinRoot(root, candidate) {
		return "", false
	}
	return candidate, true
}

func isPathWithinRoot(root, candidate string) bool {
	root = filepath.Clean(root)
	candidate = filepath.Clean(candidate)

	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func hasParentTraversal(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")
	for _, part := range strings.Split(normalized, "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
