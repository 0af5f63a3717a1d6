package processor

import (
	"fmt"
	"image"
	"mime/multipart"
)

// ValidateUpload checks the file size limit and that the payload
// decodes as an image, then rewinds the file for processing.
func (p *ImageProcessor) ValidateUpload(file multipart.File, maxSize int64) error {
	size, err := file.Seek(0, 2)
	if err != nil {
		return fmt.Errorf("failed to determine file size: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed size %d", size, maxSize)
	}

	_, _, err = image.Decode(file)
	if err != nil {
		return fmt.Errorf("invalid image format: %w", err)
	}

	// Reset for further processing.
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}
	return nil
}
