// Package youtube resolves user-supplied video URLs into metadata via the
// YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"shortspro/internal/types"
	apperrors "shortspro/pkg/errors"

	"github.com/go-resty/resty/v2"
)

const defaultEndpoint = "https://www.googleapis.com/youtube/v3"

// videoIDPattern matches the watch, short-link and embed URL shapes.
var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&?/]+)`)

// iso8601Duration matches durations like PT1H2M30S; every component is optional.
var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(endpoint, apiKey, proxyAddr string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetRetryCount(0)
	if proxyAddr != "" {
		httpClient.SetProxy(proxyAddr)
	}
	return &Client{
		http:   httpClient,
		apiKey: apiKey,
	}
}

// ExtractVideoID pulls the canonical video identifier out of a URL, or ""
// when no known URL shape matches.
func ExtractVideoID(url string) string {
	match := videoIDPattern.FindStringSubmatch(url)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}

// ParseISO8601Duration converts an ISO-8601 time span (PT#H#M#S) into whole
// seconds. Missing components count as zero; a string with no recognizable
// components yields 0 rather than an error, matching upstream leniency.
func ParseISO8601Duration(s string) int {
	match := iso8601Duration.FindStringSubmatch(s)
	if match == nil {
		return 0
	}
	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])
	return hours*3600 + minutes*60 + seconds
}

type videoListResponse struct {
	Items []struct {
		Id      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High struct {
					Url string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Resolve fetches title, duration, description and statistics for the video
// referenced by url. Zero items from the upstream and transport failures are
// reported as distinct error kinds.
func (c *Client) Resolve(ctx context.Context, url string) (*types.VideoMetadata, error) {
	videoId := ExtractVideoID(url)
	if videoId == "" {
		return nil, apperrors.ErrInvalidURL
	}

	var result videoListResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails,statistics",
			"id":   videoId,
			"key":  c.apiKey,
		}).
		SetResult(&result).
		SetError(&result).
		Get("/videos")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUpstreamError, "Metadata lookup failed", err)
	}
	if resp.IsError() {
		detail := result.Error.Message
		if detail == "" {
			detail = resp.String()
		}
		return nil, apperrors.WrapWithDetail(apperrors.CodeUpstreamError, "Metadata lookup failed",
			detail, fmt.Errorf("upstream status %d", resp.StatusCode()))
	}
	if len(result.Items) == 0 {
		return nil, apperrors.ErrVideoNotFound
	}

	item := result.Items[0]
	viewCount, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)

	return &types.VideoMetadata{
		VideoId:         videoId,
		Title:           item.Snippet.Title,
		DurationSeconds: ParseISO8601Duration(item.ContentDetails.Duration),
		Description:     item.Snippet.Description,
		ViewCount:       viewCount,
		Uploader:        item.Snippet.ChannelTitle,
		ThumbnailUrl:    item.Snippet.Thumbnails.High.Url,
	}, nil
}
