package viewstate

import (
	"context"
	"sync"

	"stray-pets/internal/domain/autofill"
	"stray-pets/internal/domain/listings"
)

type fakeStore struct {
	mu sync.Mutex

	items   []listings.Listing
	failAll error
	failOp  error

	creates int
	updates int
	deletes int

	// si no es nil, CreateWithImages avisa en entered y espera release
	entered chan struct{}
	release chan struct{}
}

func (s *fakeStore) FetchAll(context.Context) ([]listings.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	return append([]listings.Listing(nil), s.items...), nil
}

func (s *fakeStore) Get(_ context.Context, key string) (listings.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.items {
		if l.Key == key {
			return l, nil
		}
	}
	return listings.Listing{}, listings.ErrNotFound
}

func (s *fakeStore) ListByOwner(_ context.Context, ownerID string) ([]listings.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll != nil {
		return nil, s.failAll
	}
	out := []listings.Listing{}
	for _, l := range s.items {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateWithImages(_ context.Context, ownerID string, in listings.Listing, uploads []listings.SlotUpload) (string, error) {
	if s.entered != nil {
		s.entered <- struct{}{}
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.creates++
	if s.failOp != nil {
		return "", s.failOp
	}
	in.Key = "new-key"
	in.OwnerID = ownerID
	for _, up := range uploads {
		in.Images[up.Slot] = "https://img/" + up.Slot.String()
	}
	s.items = append(s.items, in)
	return in.Key, nil
}

func (s *fakeStore) Update(_ context.Context, key string, in listings.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	if s.failOp != nil {
		return s.failOp
	}
	for i, l := range s.items {
		if l.Key == key {
			in.Key = key
			in.OwnerID = l.OwnerID
			s.items[i] = in
			return nil
		}
	}
	return listings.ErrNotFound
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.failOp != nil {
		return s.failOp
	}
	for i, l := range s.items {
		if l.Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return listings.ErrNotFound
}

type fakeAutofill struct {
	suggestion autofill.Suggestion
	analyzeErr error
	location   string
	locateErr  error
	analyzed   int
}

func (f *fakeAutofill) Analyze(context.Context, []byte, string) (autofill.Suggestion, error) {
	f.analyzed++
	return f.suggestion, f.analyzeErr
}

func (f *fakeAutofill) Locate(context.Context, float64, float64) (string, error) {
	return f.location, f.locateErr
}

type fakeLocator struct {
	err error
}

func (f fakeLocator) CurrentPosition(context.Context) (float64, float64, error) {
	return 37.5, 127.0, f.err
}

// recorder junta todo lo publicado por un Observable.
type recorder[T any] struct {
	mu  sync.Mutex
	got []T
}

func record[T any](o *Observable[T]) *recorder[T] {
	r := &recorder[T]{}
	o.Subscribe(func(v T) {
		r.mu.Lock()
		r.got = append(r.got, v)
		r.mu.Unlock()
	})
	return r
}

func (r *recorder[T]) all() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.got...)
}

func (r *recorder[T]) last() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	if len(r.got) == 0 {
		return zero
	}
	return r.got[len(r.got)-1]
}
