package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("not found")

type blob struct {
	contentType string
	data        []byte
}

// BlobStore guarda las fotos en memoria y las sirve bajo {BaseURL}/blobs/{path}.
// Solo para dev y tests.
type BlobStore struct {
	BaseURL string

	mu    sync.RWMutex
	byKey map[string]blob
}

func NewBlobStore(baseURL string) *BlobStore {
	return &BlobStore{
		BaseURL: strings.TrimRight(baseURL, "/"),
		byKey:   make(map[string]blob),
	}
}

func (s *BlobStore) Put(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return "", errors.New("blob path required")
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.byKey[path] = blob{contentType: contentType, data: buf.Bytes()}
	s.mu.Unlock()

	return s.BaseURL + "/blobs/" + (&url.URL{Path: path}).EscapedPath(), nil
}

func (s *BlobStore) Get(path string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.byKey[strings.Trim(path, "/")]
	if !ok {
		return nil, "", ErrNotFound
	}
	return b.data, b.contentType, nil
}

// ServeHTTP espera el path ya sin el prefijo /blobs (http.StripPrefix).
func (s *BlobStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, ct, err := s.Get(r.URL.Path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}
