package listings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	mu    sync.Mutex
	order []string
	byKey map[string]Listing
	seq   int
	calls int
	fail  error
}

func newTestRepo() *testRepo {
	return &testRepo{byKey: map[string]Listing{}}
}

func (r *testRepo) Create(_ context.Context, l Listing) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return "", r.fail
	}
	r.seq++
	key := fmt.Sprintf("key-%03d", r.seq)
	l.Key = key
	r.byKey[key] = l
	r.order = append(r.order, key)
	return key, nil
}

func (r *testRepo) Get(_ context.Context, key string) (Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return Listing{}, r.fail
	}
	l, ok := r.byKey[key]
	if !ok {
		return Listing{}, ErrNotFound
	}
	return l, nil
}

func (r *testRepo) Put(_ context.Context, key string, l Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return r.fail
	}
	if _, ok := r.byKey[key]; !ok {
		return ErrNotFound
	}
	l.Key = key
	r.byKey[key] = l
	return nil
}

func (r *testRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return r.fail
	}
	if _, ok := r.byKey[key]; !ok {
		return ErrNotFound
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

func (r *testRepo) FetchAll(_ context.Context) ([]Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.fail != nil {
		return nil, r.fail
	}
	out := make([]Listing, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k])
	}
	return out, nil
}

type testBlobs struct {
	mu    sync.Mutex
	paths []string
	fail  string // slot path que falla (por content type)
}

func (b *testBlobs) Put(_ context.Context, path, contentType string, r io.Reader) (string, error) {
	if b.fail != "" && contentType == b.fail {
		return "", errors.New("bucket rejected upload")
	}
	data, _ := io.ReadAll(r)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paths = append(b.paths, path)
	return "https://blobs.test/" + path + "?len=" + fmt.Sprint(len(data)), nil
}

// -------------------------
// Tests
// -------------------------

func TestService_CreateThenFetchAll_RoundTrip(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	in := Listing{
		Key:         "client-supplied",
		OwnerID:     "spoofed",
		Name:        " Max ",
		Species:     "Golden Retriever",
		Gender:      "male",
		Age:         "3",
		Description: "friendly",
		Weight:      "15.5",
		Condition:   "healthy",
		Feature:     "floppy ears",
		Contact:     "010-0000-0000",
		Location:    "Seoul",
	}
	key, err := svc.Create(ctx, "owner-1", in)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	all, err := svc.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, key, got.Key)
	assert.Equal(t, "owner-1", got.OwnerID, "owner comes from the authenticated identity")
	assert.Equal(t, "Max", got.Name)
	assert.Equal(t, "Golden Retriever", got.Species)
	assert.Equal(t, "male", got.Gender)
	assert.Equal(t, string(StatusUnderCare), got.Status)
	assert.Equal(t, "3", got.Age)
	assert.Equal(t, "friendly", got.Description)
	assert.Equal(t, "15.5", got.Weight)
	assert.Equal(t, "healthy", got.Condition)
	assert.Equal(t, "floppy ears", got.Feature)
	assert.Equal(t, "010-0000-0000", got.Contact)
	assert.Equal(t, "Seoul", got.Location)
}

func TestService_Create_ValidationBeforeAnyStoreCall(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testBlobs{})
	ctx := context.Background()

	for _, tc := range []struct {
		name  string
		owner string
		in    Listing
	}{
		{"missing name", "owner-1", Listing{Species: "dog"}},
		{"missing species", "owner-1", Listing{Name: "Max", Species: "  "}},
		{"missing owner", "", Listing{Name: "Max", Species: "dog"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.owner, tc.in)
			assert.ErrorIs(t, err, ErrValidation)

			_, err = svc.CreateWithImages(ctx, tc.owner, tc.in, []SlotUpload{{Slot: SlotFront, Data: []byte("x")}})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Zero(t, repo.calls)
}

func TestService_StoreFailuresAreUnavailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	key, err := svc.Create(ctx, "owner-1", Listing{Name: "Max", Species: "dog"})
	require.NoError(t, err)

	repo.fail = errors.New("deadline exceeded")

	_, err = svc.FetchAll(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = svc.Create(ctx, "owner-1", Listing{Name: "Max", Species: "dog"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, svc.Update(ctx, key, Listing{Name: "Max", Species: "dog"}), ErrStoreUnavailable)
	assert.ErrorIs(t, svc.Delete(ctx, key), ErrStoreUnavailable)
}

func TestService_UpdateAndDelete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Update(ctx, "gone", Listing{Name: "a", Species: "b"}), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "gone"), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, " "), ErrNotFound)
	_, err := svc.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_KeepsOwnerAndImages_EvenForNonOwnerCaller(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	key, err := svc.Create(ctx, "owner-1", Listing{Name: "Max", Species: "dog"})
	require.NoError(t, err)
	stored := repo.byKey[key]
	stored.Images[SlotSide] = "https://blobs.test/side.png"
	repo.byKey[key] = stored

	// El cliente del store no autoriza: un llamado directo de otro usuario escribe igual.
	err = svc.Update(ctx, key, Listing{OwnerID: "intruder", Name: "Maxi", Species: "dog", Location: "Busan"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Maxi", got.Name)
	assert.Equal(t, "Busan", got.Location)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, []string{"https://blobs.test/side.png"}, got.Images.URLs())
	assert.False(t, CanEdit("intruder", got, EditableContext))
}

func TestService_ListByOwner(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	k1, _ := svc.Create(ctx, "owner-1", Listing{Name: "A", Species: "dog"})
	_, _ = svc.Create(ctx, "owner-2", Listing{Name: "B", Species: "cat"})
	k3, _ := svc.Create(ctx, "owner-1", Listing{Name: "C", Species: "dog"})

	mine, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []string{k1, k3}, keys(mine))

	_, err = svc.ListByOwner(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateWithImages_PlacesURLsBySlot(t *testing.T) {
	repo := newTestRepo()
	blobStore := &testBlobs{}
	svc := NewService(repo, blobStore)
	n := 0
	var mu sync.Mutex
	svc.newName = func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("img-%d", n)
	}

	key, err := svc.CreateWithImages(context.Background(), "owner-1", Listing{Name: "Max", Species: "dog"}, []SlotUpload{
		{Slot: SlotWithOwner, ContentType: "image/jpeg", Data: []byte("four")},
		{Slot: SlotFront, ContentType: "image/png", Data: bytes.Repeat([]byte("x"), 10)},
	})
	require.NoError(t, err)

	got := repo.byKey[key]
	assert.True(t, strings.HasPrefix(got.Images[SlotFront], "https://blobs.test/PetImages/img-"))
	assert.True(t, strings.HasSuffix(got.Images[SlotFront], ".png?len=10"))
	assert.True(t, strings.HasSuffix(got.Images[SlotWithOwner], ".jpg?len=4"))
	assert.Empty(t, got.Images[SlotSide])
	assert.Len(t, got.Images.URLs(), 2)
	assert.Len(t, blobStore.paths, 2)
}

func TestService_CreateWithImages_UploadFailurePersistsNothing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testBlobs{fail: "image/webp"})

	_, err := svc.CreateWithImages(context.Background(), "owner-1", Listing{Name: "Max", Species: "dog"}, []SlotUpload{
		{Slot: SlotFront, ContentType: "image/png", Data: []byte("a")},
		{Slot: SlotSide, ContentType: "image/webp", Data: []byte("b")},
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, repo.order)
}

func TestService_CreateWithImages_WithoutBlobStore(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.CreateWithImages(context.Background(), "owner-1", Listing{Name: "Max", Species: "dog"}, []SlotUpload{
		{Slot: SlotFront, ContentType: "image/png", Data: []byte("a")},
	})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	key, err := svc.CreateWithImages(context.Background(), "owner-1", Listing{Name: "Max", Species: "dog"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, key)
}

func TestParseSlotAndURLs(t *testing.T) {
	s, ok := ParseSlot("with_owner")
	assert.True(t, ok)
	assert.Equal(t, SlotWithOwner, s)

	s, ok = ParseSlot("2")
	assert.True(t, ok)
	assert.Equal(t, SlotSide, s)

	_, ok = ParseSlot("back")
	assert.False(t, ok)

	im := Images{"", "b", "", "d"}
	assert.Equal(t, []string{"b", "d"}, im.URLs())
	assert.True(t, Images{}.IsEmpty())
}
