package storage

import (
	"context"
	"testing"

	"github.com/ptanh/image-resizer/internal/config"
	"github.com/ptanh/image-resizer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *StorageService {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	s, err := NewStorageService(cfg)
	require.NoError(t, err)
	return s
}

func TestGenerateCacheKey_VariesWithParameters(t *testing.T) {
	s := newTestService(t)

	image := []byte("image bytes")
	scale := &models.ResizeRequest{Mode: models.ModeScale, ScaleFactor: 2}
	explicit := &models.ResizeRequest{Mode: models.ModeExplicit, TargetWidth: 200, TargetHeight: 200}

	a := s.GenerateCacheKey(image, scale)
	b := s.GenerateCacheKey(image, explicit)

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, s.GenerateCacheKey(image, &models.ResizeRequest{Mode: models.ModeScale, ScaleFactor: 2}))
}

func TestGenerateCacheKey_VariesWithContent(t *testing.T) {
	s := newTestService(t)

	// Two different images must never share a cache entry, whatever
	// their upload filenames were.
	scale := &models.ResizeRequest{Mode: models.ModeScale, ScaleFactor: 2}

	a := s.GenerateCacheKey([]byte("first image"), scale)
	b := s.GenerateCacheKey([]byte("second image"), scale)

	assert.NotEqual(t, a, b)
}

func TestGenerateCacheKey_IgnoresQuality(t *testing.T) {
	s := newTestService(t)

	image := []byte("image bytes")
	low := &models.ResizeRequest{Mode: models.ModeScale, ScaleFactor: 1.5, Quality: 1}
	high := &models.ResizeRequest{Mode: models.ModeScale, ScaleFactor: 1.5, Quality: 100}

	// Quality never reaches the encoder, so it must not split cache entries.
	assert.Equal(t, s.GenerateCacheKey(image, low), s.GenerateCacheKey(image, high))
}

func TestUpload_NotConfigured(t *testing.T) {
	s := newTestService(t)

	assert.False(t, s.UploadEnabled())

	_, err := s.Upload(context.Background(), []byte("data"), "photo.png", "image/png")
	assert.ErrorIs(t, err, ErrUploadNotConfigured)
}
