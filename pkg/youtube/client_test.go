package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "shortspro/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoID(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30s", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"not a video url", "https://www.youtube.com/feed/subscriptions", ""},
		{"unrelated host", "https://example.com/watch?v=abc", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractVideoID(tc.url))
		})
	}
}

func TestParseISO8601Duration(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{"PT1H2M30S", 3750},
		{"PT10M", 600},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT0M0S", 0},
		{"garbage", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ParseISO8601Duration(tc.input), "input %q", tc.input)
	}
}

func TestResolve_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos", r.URL.Path)
		assert.Equal(t, "abc123xyz00", r.URL.Query().Get("id"))
		assert.Equal(t, "snippet,contentDetails,statistics", r.URL.Query().Get("part"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"id": "abc123xyz00",
				"snippet": {
					"title": "Test Video",
					"description": "A description",
					"channelTitle": "Test Channel",
					"thumbnails": {"high": {"url": "https://img.example/hq.jpg"}}
				},
				"contentDetails": {"duration": "PT10M30S"},
				"statistics": {"viewCount": "123456"}
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "")
	meta, err := client.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc123xyz00")
	require.NoError(t, err)

	assert.Equal(t, "abc123xyz00", meta.VideoId)
	assert.Equal(t, "Test Video", meta.Title)
	assert.Equal(t, 630, meta.DurationSeconds)
	assert.Equal(t, int64(123456), meta.ViewCount)
	assert.Equal(t, "Test Channel", meta.Uploader)
	assert.Equal(t, "https://img.example/hq.jpg", meta.ThumbnailUrl)
}

func TestResolve_InvalidURL(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "key", "")
	_, err := client.Resolve(context.Background(), "https://example.com/nope")
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidURL))
}

func TestResolve_ZeroItemsIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "")
	_, err := client.Resolve(context.Background(), "https://youtu.be/gone0000000")
	assert.True(t, apperrors.Is(err, apperrors.CodeVideoNotFound))
}

func TestResolve_UpstreamErrorPreservesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "quotaExceeded"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "")
	_, err := client.Resolve(context.Background(), "https://youtu.be/abc12345678")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeUpstreamError))

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Contains(t, appErr.Detail, "quotaExceeded")
}
