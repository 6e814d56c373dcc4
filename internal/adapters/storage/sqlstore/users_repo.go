package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"stray-pets/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Put(ctx context.Context, p users.UserProfile) error {
	if strings.TrimSpace(p.UID) == "" {
		return errors.New("uid required")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (uid, nickname, creation_date)
		VALUES ($1,$2,$3)
		ON CONFLICT (uid) DO UPDATE SET
			nickname = excluded.nickname,
			creation_date = excluded.creation_date
	`,
		p.UID,
		p.Nickname,
		p.CreationDate.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *UsersRepo) Get(ctx context.Context, uid string) (users.UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return users.UserProfile{}, users.ErrNotFound
	}

	var p users.UserProfile
	var created string
	err := r.db.QueryRowContext(ctx, `
		SELECT uid, nickname, creation_date
		FROM users
		WHERE uid = $1
	`, uid).Scan(&p.UID, &p.Nickname, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.UserProfile{}, users.ErrNotFound
		}
		return users.UserProfile{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return users.UserProfile{}, fmt.Errorf("creation_date: %w", err)
	}
	p.CreationDate = t
	return p, nil
}
