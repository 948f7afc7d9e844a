package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads/")

	url, err := store.Put(context.Background(), "covers/test.png", "image/png", bytes.NewReader([]byte("payload")))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/covers/test.png", url)

	written, err := os.ReadFile(filepath.Join(dir, "covers", "test.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), written)
}

func TestLocalStorePutOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads")

	ctx := context.Background()
	_, err := store.Put(ctx, "cover.png", "image/png", bytes.NewReader([]byte("first")))
	require.NoError(t, err)
	_, err = store.Put(ctx, "cover.png", "image/png", bytes.NewReader([]byte("second")))
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), written)
}
