package viewstate

import (
	"context"

	"stray-pets/internal/domain/listings"
)

// MyUploads lista lo publicado por el usuario; el detalle se abre editable.
type MyUploads struct {
	store   ListingStore
	session Session

	Items   *Observable[[]listings.Listing]
	Notices *Observable[Notice]
	Busy    *Observable[bool] // true mientras haya una acción en vuelo

	busy *busy
}

func NewMyUploads(store ListingStore, session Session) *MyUploads {
	bz := newBusy()
	return &MyUploads{
		store:   store,
		session: session,
		Items:   NewObservable([]listings.Listing{}),
		Notices: NewObservable(Notice{}),
		Busy:    bz.State,
		busy:    bz,
	}
}

func (m *MyUploads) Load(ctx context.Context) {
	if m.session.UserID == "" {
		m.Items.Set([]listings.Listing{})
		return
	}
	_, err := m.busy.run(ctx, "load", func() error {
		items, err := m.store.ListByOwner(ctx, m.session.UserID)
		if err != nil {
			return err
		}
		m.Items.Set(items)
		return nil
	})
	if err != nil {
		m.Notices.Set(NoticeFor(err))
	}
}

func (m *MyUploads) Open(l listings.Listing) *Detail {
	return NewDetail(m.store, m.session, l, listings.EditableContext)
}
