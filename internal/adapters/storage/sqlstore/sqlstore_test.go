package sqlstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"stray-pets/internal/domain/listings"
	"stray-pets/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	// dos veces no rompe
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "x")
	require.Error(t, err)
}

func TestListingsRepo_RoundTrip(t *testing.T) {
	repo := NewListingsRepo(openTestDB(t))
	ctx := context.Background()

	in := listings.Listing{
		OwnerID:  "u1",
		Name:     "Max",
		Species:  "Golden Retriever",
		Gender:   "male",
		Status:   "under_care",
		Location: "Seoul",
	}
	in.Images[listings.SlotFront] = "https://img/front.png"
	in.Images[listings.SlotWithOwner] = "https://img/owner.png"

	key, err := repo.Create(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	in.Key = key
	assert.Equal(t, in, got)
	assert.Equal(t, []string{"https://img/front.png", "https://img/owner.png"}, got.Images.URLs())
}

func TestListingsRepo_FetchAllInInsertionOrder(t *testing.T) {
	repo := NewListingsRepo(openTestDB(t))
	ctx := context.Background()

	var keys []string
	for _, name := range []string{"A", "B", "C"} {
		k, err := repo.Create(ctx, listings.Listing{OwnerID: "u1", Name: name, Species: "dog"})
		require.NoError(t, err)
		keys = append(keys, k)
	}

	all, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, l := range all {
		assert.Equal(t, keys[i], l.Key)
	}
}

func TestListingsRepo_PutAndDelete(t *testing.T) {
	repo := NewListingsRepo(openTestDB(t))
	ctx := context.Background()

	key, err := repo.Create(ctx, listings.Listing{OwnerID: "u1", Name: "Max", Species: "dog"})
	require.NoError(t, err)

	require.NoError(t, repo.Put(ctx, key, listings.Listing{OwnerID: "u1", Name: "Maxi", Species: "dog", Contact: "010"}))
	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Maxi", got.Name)
	assert.Equal(t, "010", got.Contact)

	require.NoError(t, repo.Delete(ctx, key))
	_, err = repo.Get(ctx, key)
	assert.ErrorIs(t, err, listings.ErrNotFound)

	assert.ErrorIs(t, repo.Put(ctx, key, listings.Listing{}), listings.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, key), listings.ErrNotFound)
}

func TestUsersRepo(t *testing.T) {
	repo := NewUsersRepo(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, users.ErrNotFound)

	created := time.Date(2026, 5, 4, 10, 30, 0, 123, time.UTC)
	require.NoError(t, repo.Put(ctx, users.UserProfile{UID: "u1", Nickname: "Mina", CreationDate: created}))

	p, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mina", p.Nickname)
	assert.True(t, created.Equal(p.CreationDate))
}

func TestService_OverSQLite(t *testing.T) {
	svc := listings.NewService(NewListingsRepo(openTestDB(t)), nil)
	ctx := context.Background()

	key, err := svc.Create(ctx, "owner-1", listings.Listing{Name: "Max", Species: "Golden Retriever", Location: "Seoul"})
	require.NoError(t, err)

	// un no-dueño llamando Update directo escribe igual
	require.NoError(t, svc.Update(ctx, key, listings.Listing{Name: "Changed", Species: "Poodle"}))

	all, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Changed", all[0].Name)
	assert.Equal(t, "owner-1", all[0].OwnerID)

	assert.Len(t, listings.Apply(all, listings.FilterSpec{Species: "poodle"}), 1)
}
