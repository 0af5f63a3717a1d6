package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".webp"}

func TestHasAllowedExtension(t *testing.T) {
	assert.True(t, HasAllowedExtension("photo.png", allowedExtensions))
	assert.True(t, HasAllowedExtension("PHOTO.JPG", allowedExtensions))
	assert.True(t, HasAllowedExtension("a.b.webp", allowedExtensions))
	assert.False(t, HasAllowedExtension("animation.gif", allowedExtensions))
	assert.False(t, HasAllowedExtension("noextension", allowedExtensions))
}

func TestIsValidImageType(t *testing.T) {
	assert.True(t, IsValidImageType("image/png"))
	assert.True(t, IsValidImageType("image/jpeg; charset=binary"))
	assert.False(t, IsValidImageType("text/html"))
	assert.False(t, IsValidImageType("application/pdf"))
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename("abc123", "png")
	assert.True(t, strings.HasPrefix(name, "resized_abc123_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// Empty format falls back to png.
	assert.True(t, strings.HasSuffix(GenerateFilename("abc123", ""), ".png"))
}

func TestGenerateStorageKey_Unique(t *testing.T) {
	a := GenerateStorageKey("photo.png")
	b := GenerateStorageKey("photo.png")

	assert.True(t, strings.HasPrefix(a, "resized/photo_"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotEqual(t, a, b)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownloadImage(t *testing.T) {
	payload := testPNG(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	data, contentType, err := DownloadImage(context.Background(), server.URL, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Contains(t, contentType, "image/png")
}

func TestDownloadImage_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, _, err := DownloadImage(context.Background(), server.URL, 1<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestDownloadImage_NotAnImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>hello</html>"))
	}))
	defer server.Close()

	_, _, err := DownloadImage(context.Background(), server.URL, 1<<20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid content type")
}
