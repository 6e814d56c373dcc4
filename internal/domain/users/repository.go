package users

import "context"

type Repository interface {
	// Put escribe Users/{uid}; solo se usa al registrar.
	Put(ctx context.Context, p UserProfile) error
	Get(ctx context.Context, uid string) (UserProfile, error)
}
