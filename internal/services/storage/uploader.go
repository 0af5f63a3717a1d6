package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/ptanh/image-resizer/pkg/utils"
)

var ErrUploadNotConfigured = errors.New("storage upload is not configured")

// Upload stores the encoded image under a unique key and returns its
// public URL.
func (s *StorageService) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if !s.uploadEnabled {
		return "", ErrUploadNotConfigured
	}

	key := utils.GenerateStorageKey(filename)

	_, err := s.sbClient.UploadFile(s.bucket, key, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload to supabase: %w", err)
	}

	publicURL := s.sbClient.GetPublicUrl(s.bucket, key)
	return publicURL.SignedURL, nil
}
