package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ptanh/image-resizer/internal/config"
	"github.com/ptanh/image-resizer/internal/models"
	"github.com/ptanh/image-resizer/internal/services/processor"
	"github.com/ptanh/image-resizer/internal/services/storage"
	"github.com/ptanh/image-resizer/pkg/utils"
	"go.uber.org/zap"
)

const (
	defaultQuality = 90
	maxCacheAge    = 3600
	imageParamKey  = "image"
)

type ImageHandler struct {
	processor *processor.ImageProcessor
	storage   *storage.StorageService
	logger    *zap.Logger
	config    *config.Config
}

func NewImageHandler(
	processor *processor.ImageProcessor,
	storage *storage.StorageService,
	logger *zap.Logger,
	config *config.Config,
) *ImageHandler {
	return &ImageHandler{
		processor: processor,
		storage:   storage,
		logger:    logger,
		config:    config,
	}
}

// ResizeImage handles a single multipart image upload.
func (h *ImageHandler) ResizeImage(c *gin.Context) {
	file, header, err := c.Request.FormFile(imageParamKey)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, processor.ErrMissingImage.Error())
		return
	}
	defer file.Close()

	if !utils.HasAllowedExtension(header.Filename, h.config.Storage.AllowedExtensions) {
		h.respondError(c, http.StatusBadRequest, "Unsupported file extension, expected one of: .jpg, .jpeg, .png, .bmp, .webp")
		return
	}

	if err := h.processor.ValidateUpload(file, h.config.Storage.MaxFileSize); err != nil {
		h.respondError(c, http.StatusBadRequest, "Invalid image: "+err.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondResizeError(c, &processor.ProcessingError{Cause: err})
		return
	}

	req := h.parseResizeParams(c)

	// Cache only serves the binary path; URL responses carry metadata
	// that is not cached alongside the bytes.
	cacheKey := h.storage.GenerateCacheKey(data, req)
	if !h.wantsURL(c) {
		if cached, err := h.storage.GetFromCache(c.Request.Context(), cacheKey); err == nil && cached != nil {
			h.logger.Info("Cache hit", zap.String("filename", header.Filename))
			h.respondPNG(c, cached)
			return
		}
	}

	img, _, err := processor.DecodeImage(bytes.NewReader(data))
	if err != nil {
		h.respondResizeError(c, &processor.ProcessingError{Cause: err})
		return
	}

	h.resizeAndRespond(c, img, req, header.Filename, cacheKey)
}

// ResizeImageFromURL resizes an image fetched from a remote URL instead
// of a direct upload.
func (h *ImageHandler) ResizeImageFromURL(c *gin.Context) {
	imageURL := c.PostForm("image_url")
	if imageURL == "" {
		h.respondError(c, http.StatusBadRequest, processor.ErrMissingImage.Error())
		return
	}

	data, _, err := utils.DownloadImage(c.Request.Context(), imageURL, h.config.Storage.MaxFileSize)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "Failed to fetch image: "+err.Error())
		return
	}

	req := h.parseResizeParams(c)

	cacheKey := h.storage.GenerateCacheKey(data, req)
	if !h.wantsURL(c) {
		if cached, err := h.storage.GetFromCache(c.Request.Context(), cacheKey); err == nil && cached != nil {
			h.logger.Info("Cache hit", zap.String("image_url", imageURL))
			h.respondPNG(c, cached)
			return
		}
	}

	img, _, err := processor.DecodeImage(bytes.NewReader(data))
	if err != nil {
		h.respondResizeError(c, &processor.ProcessingError{Cause: err})
		return
	}

	h.resizeAndRespond(c, img, req, imageURL, cacheKey)
}

// GetStats returns cache statistics.
func (h *ImageHandler) GetStats(c *gin.Context) {
	cacheStats, err := h.storage.GetCacheStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get cache stats", zap.Error(err))
	}

	stats := map[string]interface{}{
		"cache":     cacheStats,
		"timestamp": time.Now(),
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}

// HealthCheck reports backend service health.
func (h *ImageHandler) HealthCheck(c *gin.Context) {
	services := h.storage.HealthCheck(c.Request.Context())
	overall := h.calculateOverallHealth(services)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == "healthy",
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}
