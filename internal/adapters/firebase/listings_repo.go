package firebase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stray-pets/internal/domain/listings"

	"firebase.google.com/go/v4/db"
)

// ListingsRepo guarda en Pets/{key} con push keys (crecientes en el tiempo).
type ListingsRepo struct {
	ref *db.Ref
}

func NewListingsRepo(client *db.Client) *ListingsRepo {
	return &ListingsRepo{ref: client.NewRef(petsNode)}
}

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) (string, error) {
	child, err := r.ref.Push(ctx, toPetRecord(l))
	if err != nil {
		return "", fmt.Errorf("push %s: %w", petsNode, err)
	}
	return child.Key, nil
}

func (r *ListingsRepo) Get(ctx context.Context, key string) (listings.Listing, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return listings.Listing{}, listings.ErrNotFound
	}

	var rec *petRecord
	if err := r.ref.Child(key).Get(ctx, &rec); err != nil {
		return listings.Listing{}, fmt.Errorf("get %s/%s: %w", petsNode, key, err)
	}
	if rec == nil {
		return listings.Listing{}, listings.ErrNotFound
	}
	return rec.toListing(key), nil
}

// Put sobreescribe el registro solo si existe; la transacción evita recrear
// un listing borrado en paralelo.
func (r *ListingsRepo) Put(ctx context.Context, key string, l listings.Listing) error {
	next := toPetRecord(l)
	err := r.ref.Child(key).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var cur *petRecord
		if err := tn.Unmarshal(&cur); err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, listings.ErrNotFound
		}
		return next, nil
	})
	return txErr(err, "put", key)
}

func (r *ListingsRepo) Delete(ctx context.Context, key string) error {
	err := r.ref.Child(key).Transaction(ctx, func(tn db.TransactionNode) (interface{}, error) {
		var cur *petRecord
		if err := tn.Unmarshal(&cur); err != nil {
			return nil, err
		}
		if cur == nil {
			return nil, listings.ErrNotFound
		}
		return nil, nil
	})
	return txErr(err, "delete", key)
}

func (r *ListingsRepo) FetchAll(ctx context.Context) ([]listings.Listing, error) {
	nodes, err := r.ref.OrderByKey().GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", petsNode, err)
	}

	out := make([]listings.Listing, 0, len(nodes))
	for _, n := range nodes {
		var rec petRecord
		if err := n.Unmarshal(&rec); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", petsNode, n.Key(), err)
		}
		out = append(out, rec.toListing(n.Key()))
	}
	return out, nil
}

func txErr(err error, op, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, listings.ErrNotFound) {
		return listings.ErrNotFound
	}
	return fmt.Errorf("%s %s/%s: %w", op, petsNode, key, err)
}
