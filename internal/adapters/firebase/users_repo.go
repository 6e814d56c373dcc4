package firebase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stray-pets/internal/domain/users"

	"firebase.google.com/go/v4/db"
)

type UsersRepo struct {
	ref *db.Ref
}

func NewUsersRepo(client *db.Client) *UsersRepo {
	return &UsersRepo{ref: client.NewRef(usersNode)}
}

func (r *UsersRepo) Put(ctx context.Context, p users.UserProfile) error {
	uid := strings.TrimSpace(p.UID)
	if uid == "" {
		return errors.New("uid required")
	}
	if err := r.ref.Child(uid).Set(ctx, toUserRecord(p)); err != nil {
		return fmt.Errorf("set %s/%s: %w", usersNode, uid, err)
	}
	return nil
}

func (r *UsersRepo) Get(ctx context.Context, uid string) (users.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return users.UserProfile{}, users.ErrNotFound
	}

	var rec *userRecord
	if err := r.ref.Child(uid).Get(ctx, &rec); err != nil {
		return users.UserProfile{}, fmt.Errorf("get %s/%s: %w", usersNode, uid, err)
	}
	if rec == nil {
		return users.UserProfile{}, users.ErrNotFound
	}
	return rec.toProfile(uid), nil
}
