package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"stray-pets/internal/domain/listings"

	"github.com/oklog/ulid/v2"
)

// ListingsRepo guarda Pets/{key} en la tabla listings. Las keys son ULID, así
// que ORDER BY key es orden de inserción.
type ListingsRepo struct {
	db    *sql.DB
	newID func() string
}

func NewListingsRepo(db *sql.DB) *ListingsRepo {
	return &ListingsRepo{
		db:    db,
		newID: func() string { return ulid.Make().String() },
	}
}

const listingColumns = `
	key, owner_id,
	name, species, gender, status,
	age, description, weight, pet_condition,
	feature, contact, location,
	image_front, image_side, image_free, image_owner`

func (r *ListingsRepo) Create(ctx context.Context, l listings.Listing) (string, error) {
	key := r.newID()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO listings (`+listingColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		key,
		l.OwnerID,
		l.Name,
		l.Species,
		l.Gender,
		l.Status,
		l.Age,
		l.Description,
		l.Weight,
		l.Condition,
		l.Feature,
		l.Contact,
		l.Location,
		l.Images[listings.SlotFront],
		l.Images[listings.SlotSide],
		l.Images[listings.SlotFree],
		l.Images[listings.SlotWithOwner],
	)
	if err != nil {
		return "", err
	}
	return key, nil
}

// Put reemplaza el registro completo. owner_id también se escribe: el service
// ya lo trae del registro guardado.
// Los placeholders van en orden creciente (sqlite los numera por aparición).
func (r *ListingsRepo) Put(ctx context.Context, key string, l listings.Listing) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE listings
		SET
			owner_id = $1,
			name = $2,
			species = $3,
			gender = $4,
			status = $5,
			age = $6,
			description = $7,
			weight = $8,
			pet_condition = $9,
			feature = $10,
			contact = $11,
			location = $12,
			image_front = $13,
			image_side = $14,
			image_free = $15,
			image_owner = $16
		WHERE key = $17
	`,
		l.OwnerID,
		l.Name,
		l.Species,
		l.Gender,
		l.Status,
		l.Age,
		l.Description,
		l.Weight,
		l.Condition,
		l.Feature,
		l.Contact,
		l.Location,
		l.Images[listings.SlotFront],
		l.Images[listings.SlotSide],
		l.Images[listings.SlotFree],
		l.Images[listings.SlotWithOwner],
		key,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func (r *ListingsRepo) Get(ctx context.Context, key string) (listings.Listing, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return listings.Listing{}, listings.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE key = $1`, key)
	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return listings.Listing{}, listings.ErrNotFound
		}
		return listings.Listing{}, err
	}
	return l, nil
}

func (r *ListingsRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE key = $1`, key)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return listings.ErrNotFound
	}
	return nil
}

func (r *ListingsRepo) FetchAll(ctx context.Context) ([]listings.Listing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+listingColumns+` FROM listings ORDER BY key ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]listings.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (listings.Listing, error) {
	var l listings.Listing
	err := s.Scan(
		&l.Key,
		&l.OwnerID,
		&l.Name,
		&l.Species,
		&l.Gender,
		&l.Status,
		&l.Age,
		&l.Description,
		&l.Weight,
		&l.Condition,
		&l.Feature,
		&l.Contact,
		&l.Location,
		&l.Images[listings.SlotFront],
		&l.Images[listings.SlotSide],
		&l.Images[listings.SlotFree],
		&l.Images[listings.SlotWithOwner],
	)
	return l, err
}
