package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/ptanh/image-resizer/internal/models"
)

type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Result is the outcome of a successful resize. Image is the decoded
// PNG round-trip of the resized bitmap, Data its encoded bytes.
type Result struct {
	Image          *image.NRGBA
	Data           []byte
	OriginalWidth  int
	OriginalHeight int
	Width          int
	Height         int
	Message        string
}

// Resize normalizes img to RGBA, resamples it to the dimensions the
// request selects and re-encodes it losslessly as PNG. The returned
// bitmap is decoded back from the PNG bytes so it reflects exactly what
// the round-trip produces. All failures, panics included, come back as
// errors; validation failures return the sentinel errors from errors.go
// and everything else a *ProcessingError.
func (p *ImageProcessor) Resize(img image.Image, req *models.ResizeRequest) (result *Result, err error) {
	if img == nil {
		return nil, ErrMissingImage
	}

	bounds := img.Bounds()
	origWidth, origHeight := bounds.Dx(), bounds.Dy()

	width, height, err := targetSize(origWidth, origHeight, req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ProcessingError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	// Clone yields NRGBA with opaque alpha for sources that had none.
	normalized := imaging.Clone(img)
	resized := imaging.Resize(normalized, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, &ProcessingError{Cause: err}
	}

	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, &ProcessingError{Cause: err}
	}

	return &Result{
		Image:          imaging.Clone(decoded),
		Data:           buf.Bytes(),
		OriginalWidth:  origWidth,
		OriginalHeight: origHeight,
		Width:          width,
		Height:         height,
		Message: fmt.Sprintf("Original size: %dx%d\nResized to: %dx%d\nSaved as PNG format",
			origWidth, origHeight, width, height),
	}, nil
}

// targetSize computes output dimensions for the selected mode. Scale
// mode truncates rather than rounds, matching the original contract,
// and clamps to 1px so the result is always drawable.
func targetSize(origWidth, origHeight int, req *models.ResizeRequest) (int, int, error) {
	switch req.Mode {
	case models.ModeScale:
		if req.ScaleFactor <= 0 {
			return 0, 0, ErrInvalidScaleFactor
		}
		width := int(float64(origWidth) * req.ScaleFactor)
		height := int(float64(origHeight) * req.ScaleFactor)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		return width, height, nil
	case models.ModeExplicit:
		if req.TargetWidth <= 0 || req.TargetHeight <= 0 {
			return 0, 0, ErrInvalidDimensions
		}
		return req.TargetWidth, req.TargetHeight, nil
	default:
		return 0, 0, ErrInvalidMode
	}
}
