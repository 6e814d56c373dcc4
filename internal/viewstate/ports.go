package viewstate

import (
	"context"

	"stray-pets/internal/domain/autofill"
	"stray-pets/internal/domain/listings"
)

// ListingStore es lo que usan las pantallas de *listings.Service.
type ListingStore interface {
	FetchAll(ctx context.Context) ([]listings.Listing, error)
	Get(ctx context.Context, key string) (listings.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]listings.Listing, error)
	CreateWithImages(ctx context.Context, ownerID string, in listings.Listing, uploads []listings.SlotUpload) (string, error)
	Update(ctx context.Context, key string, in listings.Listing) error
	Delete(ctx context.Context, key string) error
}

// Autofiller es lo que usa el editor de *autofill.Service.
type Autofiller interface {
	Analyze(ctx context.Context, image []byte, mime string) (autofill.Suggestion, error)
	Locate(ctx context.Context, lat, lng float64) (string, error)
}

// Locator da la posición del dispositivo. Devuelve ErrPermissionDenied si el
// usuario no la autoriza.
type Locator interface {
	CurrentPosition(ctx context.Context) (lat, lng float64, err error)
}

// Session es el usuario logueado de la pantalla. UserID vacío = anónimo.
type Session struct {
	UserID      string
	DisplayName string
}
