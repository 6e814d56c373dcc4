package listings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"stray-pets/internal/ports/blobs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("listing not found")
)

// imagePrefix es la carpeta del bucket donde van las fotos.
const imagePrefix = "PetImages"

// Service es el cliente del store de listings. No guarda cache: quien llama
// es dueño de la copia en memoria.
type Service struct {
	repo    Repository
	blobs   blobs.Store
	newName func() string
}

func NewService(repo Repository, blobStore blobs.Store) *Service {
	return &Service{
		repo:    repo,
		blobs:   blobStore,
		newName: uuid.NewString,
	}
}

// SlotUpload es una foto a subir para un slot.
type SlotUpload struct {
	Slot        Slot
	ContentType string
	Data        []byte
}

// FetchAll trae todos los listings con su key. Ante error no devuelve parciales.
func (s *Service) FetchAll(ctx context.Context) ([]Listing, error) {
	items, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, key string) (Listing, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Listing{}, ErrNotFound
	}
	l, err := s.repo.Get(ctx, key)
	if err != nil {
		return Listing{}, storeErr(err)
	}
	return l, nil
}

// ListByOwner filtra FetchAll por dueño ("mis publicaciones").
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Listing, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrValidation
	}
	all, err := s.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Listing, 0)
	for _, l := range all {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Create persiste un listing nuevo. OwnerID sale siempre de la identidad
// autenticada, nunca del input.
func (s *Service) Create(ctx context.Context, ownerID string, in Listing) (string, error) {
	l, err := prepareCreate(ownerID, in)
	if err != nil {
		return "", err
	}
	key, err := s.repo.Create(ctx, l)
	if err != nil {
		return "", unavailable(err)
	}
	return key, nil
}

// CreateWithImages sube las fotos de cada slot y después crea el listing.
// Si falla alguna subida no se persiste nada.
func (s *Service) CreateWithImages(ctx context.Context, ownerID string, in Listing, uploads []SlotUpload) (string, error) {
	l, err := prepareCreate(ownerID, in)
	if err != nil {
		return "", err
	}
	for _, up := range uploads {
		if up.Slot < 0 || int(up.Slot) >= SlotCount {
			return "", fmt.Errorf("%w: unknown image slot %d", ErrValidation, up.Slot)
		}
	}

	if len(uploads) > 0 {
		if s.blobs == nil {
			return "", fmt.Errorf("%w: blob storage not configured", ErrStoreUnavailable)
		}

		urls := make([]string, len(uploads))
		g, gctx := errgroup.WithContext(ctx)
		for i, up := range uploads {
			g.Go(func() error {
				path := fmt.Sprintf("%s/%s.%s", imagePrefix, s.newName(), extensionFor(up.ContentType))
				u, err := s.blobs.Put(gctx, path, up.ContentType, bytes.NewReader(up.Data))
				if err != nil {
					return fmt.Errorf("upload %s: %w", up.Slot, err)
				}
				urls[i] = u
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", unavailable(err)
		}
		for i, up := range uploads {
			l.Images[up.Slot] = urls[i]
		}
	}

	key, err := s.repo.Create(ctx, l)
	if err != nil {
		return "", unavailable(err)
	}
	return key, nil
}

// Update sobreescribe el registro completo en key.
// No hay chequeo de autorización acá: la escritura es incondicional, el gating
// lo hace CanEdit (y el handler HTTP). OwnerID se conserva del registro guardado.
func (s *Service) Update(ctx context.Context, key string, in Listing) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrNotFound
	}

	current, err := s.repo.Get(ctx, key)
	if err != nil {
		return storeErr(err)
	}

	next := normalize(in)
	next.Key = key
	next.OwnerID = current.OwnerID
	// en update no se suben fotos; si no vienen, quedan las guardadas
	if next.Images.IsEmpty() {
		next.Images = current.Images
	}

	if err := s.repo.Put(ctx, key, next); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return storeErr(err)
	}
	return nil
}

// Validate aplica las reglas mínimas del store: name y species obligatorios.
func Validate(l Listing) error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(l.Species) == "" {
		return fmt.Errorf("%w: species is required", ErrValidation)
	}
	return nil
}

func prepareCreate(ownerID string, in Listing) (Listing, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Listing{}, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if err := Validate(in); err != nil {
		return Listing{}, err
	}

	l := normalize(in)
	l.Key = ""
	l.OwnerID = ownerID
	if l.Status == "" {
		l.Status = string(StatusUnderCare)
	}
	return l, nil
}

func normalize(in Listing) Listing {
	out := in
	out.Name = strings.TrimSpace(in.Name)
	out.Species = strings.TrimSpace(in.Species)
	out.Gender = strings.TrimSpace(in.Gender)
	out.Status = strings.TrimSpace(in.Status)
	out.Age = strings.TrimSpace(in.Age)
	out.Description = strings.TrimSpace(in.Description)
	out.Weight = strings.TrimSpace(in.Weight)
	out.Condition = strings.TrimSpace(in.Condition)
	out.Feature = strings.TrimSpace(in.Feature)
	out.Contact = strings.TrimSpace(in.Contact)
	out.Location = strings.TrimSpace(in.Location)
	return out
}

func storeErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return unavailable(err)
}

func unavailable(err error) error {
	if errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func extensionFor(contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return "png"
	}
}
