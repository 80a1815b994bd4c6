package util

import (
	"math/rand"
	"regexp"
	"strings"
)

const randStringCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandStringWithUpperLowerNum returns a random alphanumeric string,
// used for temp dir names and other non-secret identifiers.
func GenerateRandStringWithUpperLowerNum(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randStringCharset[rand.Intn(len(randStringCharset))]
	}
	return string(b)
}

var (
	reservedFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	whitespaceRun         = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes a synthesized clip title safe to use as a file or
// archive entry name: filesystem-reserved characters are stripped, whitespace
// runs collapse to single underscores and the result is capped at maxLen runes.
func SanitizeFilename(name string, maxLen int) string {
	name = reservedFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	name = whitespaceRun.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "clip"
	}
	runes := []rune(name)
	if maxLen > 0 && len(runes) > maxLen {
		name = string(runes[:maxLen])
		name = strings.Trim(name, "._")
	}
	return name
}

// TruncateWithEllipsis caps s at maxRunes runes, appending an ellipsis when
// anything was cut.
func TruncateWithEllipsis(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}
