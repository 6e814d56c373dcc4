package viewstate

import (
	"context"

	"stray-pets/internal/domain/listings"
)

// Detail muestra un listing. Guardar y borrar solo si CanEdit.
type Detail struct {
	store   ListingStore
	session Session
	vc      listings.ViewContext

	Listing *Observable[listings.Listing]
	Notices *Observable[Notice]
	Deleted *Observable[bool]
	Busy    *Observable[bool] // true mientras haya una acción en vuelo

	busy *busy
}

func NewDetail(store ListingStore, session Session, l listings.Listing, vc listings.ViewContext) *Detail {
	bz := newBusy()
	return &Detail{
		store:   store,
		session: session,
		vc:      vc,
		Listing: NewObservable(l),
		Notices: NewObservable(Notice{}),
		Deleted: NewObservable(false),
		Busy:    bz.State,
		busy:    bz,
	}
}

func (d *Detail) CanEdit() bool {
	return listings.CanEdit(d.session.UserID, d.Listing.Get(), d.vc)
}

// Save sobreescribe el listing con los campos editados. No-op si !CanEdit.
func (d *Detail) Save(ctx context.Context, edited listings.Listing) bool {
	if !d.CanEdit() {
		return false
	}
	key := d.Listing.Get().Key

	ran, err := d.busy.run(ctx, "save", func() error {
		if err := listings.Validate(edited); err != nil {
			return err
		}
		if err := d.store.Update(ctx, key, edited); err != nil {
			return err
		}
		fresh, err := d.store.Get(ctx, key)
		if err != nil {
			return err
		}
		d.Listing.Set(fresh)
		return nil
	})
	if !ran {
		return false
	}
	if err != nil {
		d.Notices.Set(NoticeFor(err))
		return false
	}
	d.Notices.Set(info("Saved."))
	return true
}

// Delete borra el listing. No-op si !CanEdit.
func (d *Detail) Delete(ctx context.Context) bool {
	if !d.CanEdit() {
		return false
	}
	key := d.Listing.Get().Key

	ran, err := d.busy.run(ctx, "delete", func() error {
		return d.store.Delete(ctx, key)
	})
	if !ran {
		return false
	}
	if err != nil {
		d.Notices.Set(NoticeFor(err))
		return false
	}
	d.Deleted.Set(true)
	d.Notices.Set(info("Deleted."))
	return true
}
