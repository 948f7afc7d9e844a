package storage

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultMaxImageWidth is the widest a cover image is stored at.
// Anything wider gets downscaled before upload.
const DefaultMaxImageWidth = 1600

// PrepareImage decodes an uploaded image, downscales it when its width
// exceeds maxWidth, and re-encodes it in its original format. Payloads
// with a non-image content type pass through untouched, as do images
// already within bounds.
func PrepareImage(data []byte, contentType string, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxImageWidth
	}

	format, ok := formatFor(contentType)
	if !ok {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Dx() <= maxWidth {
		return data, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	opts := []imaging.EncodeOption{}
	if format == imaging.JPEG {
		opts = append(opts, imaging.JPEGQuality(85))
	}
	if err := imaging.Encode(&buf, resized, format, opts...); err != nil {
		return nil, fmt.Errorf("encoding resized image: %w", err)
	}
	return buf.Bytes(), nil
}

// ExtensionFor maps a content type to a file extension for object keys.
func ExtensionFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "gif"):
		return "gif"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return "jpg"
	}
}

func formatFor(contentType string) (imaging.Format, bool) {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return imaging.JPEG, true
	case strings.Contains(contentType, "png"):
		return imaging.PNG, true
	case strings.Contains(contentType, "gif"):
		return imaging.GIF, true
	default:
		return imaging.JPEG, false
	}
}
