package firebase

import (
	"context"
	"errors"
	"strings"

	fb "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var ErrNotConfigured = errors.New("firebase not configured")

// Nodos raíz de la Realtime Database.
const (
	petsNode  = "Pets"
	usersNode = "Users"
)

type Config struct {
	ProjectID       string
	DatabaseURL     string
	StorageBucket   string
	CredentialsFile string // vacío => Application Default Credentials
}

// NewApp inicializa el SDK admin. DatabaseURL es obligatorio; el bucket solo
// si se van a subir fotos.
func NewApp(ctx context.Context, cfg Config) (*fb.App, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, ErrNotConfigured
	}

	opts := make([]option.ClientOption, 0, 1)
	if f := strings.TrimSpace(cfg.CredentialsFile); f != "" {
		opts = append(opts, option.WithCredentialsFile(f))
	}

	return fb.NewApp(ctx, &fb.Config{
		ProjectID:     strings.TrimSpace(cfg.ProjectID),
		DatabaseURL:   strings.TrimSpace(cfg.DatabaseURL),
		StorageBucket: strings.TrimSpace(cfg.StorageBucket),
	}, opts...)
}
