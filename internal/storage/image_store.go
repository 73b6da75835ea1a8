package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ImageStore uploads product photos to a Firebase Storage bucket and returns
// a tokenized download URL usable in import files.
type ImageStore struct {
	client *gcs.Client
	bucket string
}

func NewImageStore(client *gcs.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, bucket: bucket}
}

func (s *ImageStore) Upload(ctx context.Context, uid, mimeType string, data []byte) (string, error) {
	if s == nil || s.client == nil {
		return "", errors.New("image store is not configured")
	}
	if len(data) == 0 {
		return "", errors.New("image is empty")
	}
	objectPath := fmt.Sprintf("users/%s/products/%s%s", uid, uuid.NewString(), extFor(mimeType))
	return s.uploadWithToken(ctx, objectPath, mimeType, data)
}

func (s *ImageStore) uploadWithToken(ctx context.Context, objectPath, mimeType string, data []byte) (string, error) {
	token := uuid.NewString()
	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = mimeType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	return PublicURL(s.bucket, objectPath, token), nil
}

// PublicURL is the Firebase Storage download URL of an object carrying a download token.
func PublicURL(bucket, objectPath, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, url.PathEscape(objectPath), token)
}

func extFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
