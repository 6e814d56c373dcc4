package listings

import "context"

// Repository es la colección remota Pets/{key}.
// FetchAll devuelve en orden de inserción (las keys son crecientes en el tiempo).
type Repository interface {
	Create(ctx context.Context, l Listing) (key string, err error)
	Get(ctx context.Context, key string) (Listing, error)
	Put(ctx context.Context, key string, l Listing) error
	Delete(ctx context.Context, key string) error
	FetchAll(ctx context.Context) ([]Listing, error)
}
