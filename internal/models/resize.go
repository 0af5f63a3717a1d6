package models

import "strings"

// ResizeMode selects how target dimensions are computed.
type ResizeMode string

const (
	// ModeScale multiplies both original dimensions by ScaleFactor,
	// truncating to whole pixels.
	ModeScale ResizeMode = "scale"
	// ModeExplicit uses TargetWidth and TargetHeight exactly.
	// Aspect ratio is not preserved.
	ModeExplicit ResizeMode = "explicit"
)

// ParseResizeMode parses a mode name case-insensitively.
func ParseResizeMode(s string) (ResizeMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeScale):
		return ModeScale, true
	case string(ModeExplicit):
		return ModeExplicit, true
	}
	return "", false
}

type ResizeRequest struct {
	Mode         ResizeMode `json:"mode"`
	ScaleFactor  float64    `json:"scale_factor,omitempty"`
	TargetWidth  int        `json:"target_width,omitempty"`
	TargetHeight int        `json:"target_height,omitempty"`

	// Quality is accepted for interface compatibility only. Output is
	// always lossless PNG, which has no quality knob, so this value is
	// never consumed. Do not wire it into the encoder without changing
	// the output contract.
	Quality int `json:"quality,omitempty"`
}

const FormatPNG = "png"
