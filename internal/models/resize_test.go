package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResizeMode(t *testing.T) {
	cases := []struct {
		input string
		want  ResizeMode
		ok    bool
	}{
		{"scale", ModeScale, true},
		{"Scale", ModeScale, true},
		{"EXPLICIT", ModeExplicit, true},
		{" explicit ", ModeExplicit, true},
		{"", "", false},
		{"stretch", "", false},
	}

	for _, tc := range cases {
		mode, ok := ParseResizeMode(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.want, mode, "input %q", tc.input)
	}
}
