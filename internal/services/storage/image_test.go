package storage

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestPrepareImageDownscalesWideImages(t *testing.T) {
	original := pngBytes(t, 2000, 1000)

	prepared, err := PrepareImage(original, "image/png", 1600)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(prepared))
	require.NoError(t, err)
	assert.Equal(t, 1600, img.Bounds().Dx())
	// Aspect ratio is preserved
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestPrepareImageKeepsSmallImages(t *testing.T) {
	original := pngBytes(t, 800, 600)

	prepared, err := PrepareImage(original, "image/png", 1600)
	require.NoError(t, err)
	assert.Equal(t, original, prepared)
}

func TestPrepareImagePassesThroughNonImages(t *testing.T) {
	payload := []byte("not an image at all")

	prepared, err := PrepareImage(payload, "application/octet-stream", 1600)
	require.NoError(t, err)
	assert.Equal(t, payload, prepared)
}

func TestPrepareImageRejectsCorruptImageData(t *testing.T) {
	_, err := PrepareImage([]byte("garbage"), "image/png", 1600)
	assert.Error(t, err)
}

func TestPrepareImageDefaultsMaxWidth(t *testing.T) {
	original := pngBytes(t, DefaultMaxImageWidth+100, 500)

	prepared, err := PrepareImage(original, "image/png", 0)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(prepared))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxImageWidth, img.Bounds().Dx())
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{contentType: "image/png", expected: "png"},
		{contentType: "image/gif", expected: "gif"},
		{contentType: "image/webp", expected: "webp"},
		{contentType: "image/jpeg", expected: "jpg"},
		{contentType: "application/octet-stream", expected: "jpg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtensionFor(tt.contentType), tt.contentType)
	}
}
