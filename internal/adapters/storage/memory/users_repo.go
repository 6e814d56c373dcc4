package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-pets/internal/domain/users"
)

type userRepo struct {
	mu    sync.RWMutex
	byUID map[string]users.UserProfile
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byUID: make(map[string]users.UserProfile),
	}
}

func (r *userRepo) Put(ctx context.Context, p users.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.UID) == "" {
		return errors.New("uid required")
	}
	r.byUID[p.UID] = p
	return nil
}

func (r *userRepo) Get(ctx context.Context, uid string) (users.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byUID[uid]
	if !ok {
		return users.UserProfile{}, users.ErrNotFound
	}
	return p, nil
}
