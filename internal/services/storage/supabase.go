package storage

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore uploads objects to a Supabase storage bucket.
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

var _ ObjectStore = (*SupabaseStore)(nil)

// NewSupabaseStore creates a store for the given project. projectURL is
// the bare project URL, e.g. https://abc123.supabase.co.
func NewSupabaseStore(projectURL, serviceKey, bucket string) *SupabaseStore {
	client := storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil)
	return &SupabaseStore{
		client: client,
		bucket: bucket,
	}
}

func (s *SupabaseStore) Put(ctx context.Context, key string, contentType string, data io.Reader) (string, error) {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, data, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s to bucket %s: %w", key, s.bucket, err)
	}

	resp := s.client.GetPublicUrl(s.bucket, key)
	return resp.SignedURL, nil
}
