package blobs

import (
	"context"
	"io"
)

// Store sube un blob a path y devuelve una URL pública resoluble.
type Store interface {
	Put(ctx context.Context, path, contentType string, r io.Reader) (string, error)
}
