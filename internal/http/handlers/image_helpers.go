package handlers

import (
	"errors"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ptanh/image-resizer/internal/models"
	"github.com/ptanh/image-resizer/internal/services/processor"
	"github.com/ptanh/image-resizer/pkg/utils"
	"go.uber.org/zap"
)

// === REQUEST PARSING ===

// parseResizeParams collects the mode and its numeric parameters from
// the form. Values are parsed leniently: anything missing or malformed
// comes out as a zero value and is rejected by the engine with the
// canonical message for that field.
func (h *ImageHandler) parseResizeParams(c *gin.Context) *models.ResizeRequest {
	mode, ok := models.ParseResizeMode(c.PostForm("mode"))
	if !ok && c.PostForm("mode") == "" {
		mode = models.ModeScale
	}

	scaleFactor, _ := strconv.ParseFloat(c.PostForm("scale_factor"), 64)
	width, _ := strconv.Atoi(c.PostForm("width"))
	height, _ := strconv.Atoi(c.PostForm("height"))

	return &models.ResizeRequest{
		Mode:         mode,
		ScaleFactor:  scaleFactor,
		TargetWidth:  width,
		TargetHeight: height,
		Quality:      h.parseQuality(c.PostForm("quality")),
	}
}

func (h *ImageHandler) parseQuality(value string) int {
	if value == "" {
		return defaultQuality
	}

	quality, err := strconv.Atoi(value)
	if err != nil || quality < 1 || quality > 100 {
		return defaultQuality
	}

	return quality
}

func (h *ImageHandler) wantsURL(c *gin.Context) bool {
	return c.Query("return_url") == "true"
}

// === PROCESSING ===

func (h *ImageHandler) resizeAndRespond(c *gin.Context, img image.Image, req *models.ResizeRequest, sourceName, cacheKey string) {
	result, err := h.processor.Resize(img, req)
	if err != nil {
		h.respondResizeError(c, err)
		return
	}

	if err := h.storage.SetCache(c.Request.Context(), cacheKey, result.Data); err != nil {
		h.logger.Warn("Failed to cache result", zap.String("cache_key", cacheKey), zap.Error(err))
	}

	if h.wantsURL(c) {
		h.respondWithURL(c, result, sourceName)
		return
	}

	h.respondPNG(c, result.Data)
}

// === RESPONSES ===

func (h *ImageHandler) respondPNG(c *gin.Context, data []byte) {
	c.Header("Cache-Control", "public, max-age="+strconv.Itoa(maxCacheAge))
	c.Data(http.StatusOK, "image/png", data)
}

func (h *ImageHandler) respondWithURL(c *gin.Context, result *processor.Result, sourceName string) {
	id := uuid.New().String()

	var url string
	if h.storage.UploadEnabled() {
		filename := utils.GenerateFilename(id[:8], models.FormatPNG)
		uploaded, err := h.storage.Upload(c.Request.Context(), result.Data, filename, "image/png")
		if err != nil {
			h.logger.Warn("Failed to upload to storage", zap.Error(err))
		} else {
			url = uploaded
		}
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: models.ProcessedImage{
			ID:             id,
			OriginalName:   sourceName,
			OriginalWidth:  result.OriginalWidth,
			OriginalHeight: result.OriginalHeight,
			Width:          result.Width,
			Height:         result.Height,
			Format:         models.FormatPNG,
			FileSize:       int64(len(result.Data)),
			URL:            url,
			Message:        result.Message,
			ProcessedAt:    time.Now(),
		},
	})
}

func (h *ImageHandler) respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// respondResizeError maps engine errors onto HTTP statuses: validation
// failures are the client's fault, processing failures ours.
func (h *ImageHandler) respondResizeError(c *gin.Context, err error) {
	var perr *processor.ProcessingError
	if errors.As(err, &perr) {
		h.logger.Error("Image processing failed", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondError(c, http.StatusBadRequest, err.Error())
}

func (h *ImageHandler) calculateOverallHealth(services map[string]string) string {
	for _, status := range services {
		if status != "healthy" && status != "not configured" {
			return "unhealthy"
		}
	}
	return "healthy"
}
