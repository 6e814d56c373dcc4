package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-pets/internal/domain/listings"

	"github.com/oklog/ulid/v2"
)

// listingRepo imita el árbol Pets/{key}: keys crecientes y orden de inserción.
type listingRepo struct {
	mu    sync.RWMutex
	byKey map[string]listings.Listing
	order []string
	newID func() string
}

func NewListingRepo() listings.Repository {
	return &listingRepo{
		byKey: make(map[string]listings.Listing),
		newID: func() string { return ulid.Make().String() },
	}
}

func (r *listingRepo) Create(ctx context.Context, l listings.Listing) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.newID()
	if _, exists := r.byKey[key]; exists {
		return "", errors.New("listing key collision")
	}
	l.Key = key
	r.byKey[key] = l
	r.order = append(r.order, key)
	return key, nil
}

func (r *listingRepo) Get(ctx context.Context, key string) (listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byKey[strings.TrimSpace(key)]
	if !ok {
		return listings.Listing{}, listings.ErrNotFound
	}
	return l, nil
}

func (r *listingRepo) Put(ctx context.Context, key string, l listings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[key]; !exists {
		return listings.ErrNotFound
	}
	l.Key = key
	r.byKey[key] = l
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKey[key]; !exists {
		return listings.ErrNotFound
	}
	delete(r.byKey, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *listingRepo) FetchAll(ctx context.Context) ([]listings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]listings.Listing, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out, nil
}
