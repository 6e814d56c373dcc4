package firebase

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"firebase.google.com/go/v4/storage"
	"github.com/google/uuid"
)

const downloadURLFormat = "https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s"

// BlobStore sube fotos al bucket de Firebase Storage y devuelve la URL de
// descarga pública (con token, igual que el SDK cliente).
type BlobStore struct {
	client *storage.Client
	bucket string
}

func NewBlobStore(client *storage.Client, bucket string) *BlobStore {
	return &BlobStore{client: client, bucket: strings.TrimSpace(bucket)}
}

func (s *BlobStore) Put(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	if s.bucket == "" {
		return "", ErrNotConfigured
	}
	path = strings.Trim(path, "/")

	bh, err := s.client.Bucket(s.bucket)
	if err != nil {
		return "", fmt.Errorf("bucket %s: %w", s.bucket, err)
	}

	token := uuid.NewString()
	w := bh.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}

	return DownloadURL(s.bucket, path, token), nil
}

// DownloadURL arma la URL pública de un objeto; el path va escapado entero
// (las "/" como %2F).
func DownloadURL(bucket, path, token string) string {
	return fmt.Sprintf(downloadURLFormat, bucket, url.PathEscape(path), url.QueryEscape(token))
}
