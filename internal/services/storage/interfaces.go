package storage

import (
	"context"
	"io"
)

// ObjectStore persists uploaded blobs and hands back a public URL.
type ObjectStore interface {
	// Put stores data under key with the given content type and returns
	// the URL the object is served from.
	Put(ctx context.Context, key string, contentType string, data io.Reader) (string, error)
}
