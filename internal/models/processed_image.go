package models

import "time"

type ProcessedImage struct {
	ID             string    `json:"id"`
	OriginalName   string    `json:"original_name"`
	OriginalWidth  int       `json:"original_width"`
	OriginalHeight int       `json:"original_height"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	Format         string    `json:"format"`
	FileSize       int64     `json:"file_size"`
	URL            string    `json:"url,omitempty"`
	Message        string    `json:"message"`
	ProcessedAt    time.Time `json:"processed_at"`
}
