package viewstate

import (
	"context"

	"stray-pets/internal/domain/listings"
)

// Browse es la pantalla principal: snapshot de todos los listings + filtro.
// El snapshot es de esta pantalla; no se comparte.
type Browse struct {
	store   ListingStore
	session Session

	all    []listings.Listing
	filter listings.FilterSpec

	Visible *Observable[[]listings.Listing]
	Notices *Observable[Notice]
	Busy    *Observable[bool] // true mientras haya una acción en vuelo

	busy *busy
}

func NewBrowse(store ListingStore, session Session) *Browse {
	bz := newBusy()
	return &Browse{
		store:   store,
		session: session,
		filter:  listings.ResetFilter(),
		Visible: NewObservable([]listings.Listing{}),
		Notices: NewObservable(Notice{}),
		Busy:    bz.State,
		busy:    bz,
	}
}

// Header es el saludo de la pantalla (nickname o email).
func (b *Browse) Header() string {
	if b.session.DisplayName == "" {
		return "Welcome"
	}
	return "Welcome, " + b.session.DisplayName
}

// Load trae todo y vuelve a aplicar el filtro activo. Si falla se queda con el
// snapshot anterior y publica un aviso.
func (b *Browse) Load(ctx context.Context) {
	_, err := b.busy.run(ctx, "load", func() error {
		all, err := b.store.FetchAll(ctx)
		if err != nil {
			return err
		}
		b.all = all
		b.publish()
		return nil
	})
	if err != nil {
		b.Notices.Set(NoticeFor(err))
	}
}

func (b *Browse) SetFilter(spec listings.FilterSpec) {
	b.filter = spec
	b.publish()
}

func (b *Browse) ResetFilter() {
	b.SetFilter(listings.ResetFilter())
}

func (b *Browse) Filter() listings.FilterSpec {
	return b.filter
}

// Open arma el detalle de un listing en contexto read-only.
func (b *Browse) Open(l listings.Listing) *Detail {
	return NewDetail(b.store, b.session, l, listings.BrowseContext)
}

func (b *Browse) publish() {
	b.Visible.Set(listings.Apply(b.all, b.filter))
}
