// Package mocks provides mock implementations of core interfaces for testing.
package mocks

import (
	"context"

	"shortspro/internal/types"

	"github.com/stretchr/testify/mock"
)

// MockResolver is a mock implementation of types.MetadataResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, url string) (*types.VideoMetadata, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.VideoMetadata), args.Error(1)
}

// MockDownloader is a mock implementation of types.VideoDownloader
type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Download(ctx context.Context, url, destPath string) error {
	args := m.Called(ctx, url, destPath)
	return args.Error(0)
}

// MockTranscoder is a mock implementation of types.ClipTranscoder
type MockTranscoder struct {
	mock.Mock
}

func (m *MockTranscoder) CutVertical(ctx context.Context, inputPath, outputPath string, startSec, durationSec int) error {
	args := m.Called(ctx, inputPath, outputPath, startSec, durationSec)
	return args.Error(0)
}
