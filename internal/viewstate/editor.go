package viewstate

import (
	"context"
	"fmt"
	"strings"

	"stray-pets/internal/domain/listings"
)

// Editor es el formulario de alta: campos + 4 fotos.
type Editor struct {
	store    ListingStore
	autofill Autofiller
	locator  Locator
	session  Session

	images [listings.SlotCount]*listings.SlotUpload

	Form    *Observable[listings.Listing]
	Notices *Observable[Notice]
	Created *Observable[string] // key del último alta exitoso
	Busy    *Observable[bool]   // true mientras haya una acción en vuelo

	busy *busy
}

func NewEditor(store ListingStore, af Autofiller, locator Locator, session Session) *Editor {
	bz := newBusy()
	return &Editor{
		store:    store,
		autofill: af,
		locator:  locator,
		session:  session,
		Form:     NewObservable(blankForm()),
		Notices:  NewObservable(Notice{}),
		Created:  NewObservable(""),
		Busy:     bz.State,
		busy:     bz,
	}
}

// Edit aplica fn sobre una copia del formulario y la publica.
func (e *Editor) Edit(fn func(l *listings.Listing)) {
	l := e.Form.Get()
	fn(&l)
	e.Form.Set(l)
}

// SetImage guarda la foto de un slot. La frontal además dispara el análisis.
func (e *Editor) SetImage(ctx context.Context, slot listings.Slot, data []byte, mime string) {
	if slot < 0 || int(slot) >= listings.SlotCount || len(data) == 0 {
		return
	}
	e.images[slot] = &listings.SlotUpload{Slot: slot, ContentType: mime, Data: data}
	if slot == listings.SlotFront {
		e.Analyze(ctx, data, mime)
	}
}

func (e *Editor) HasImage(slot listings.Slot) bool {
	return slot >= 0 && int(slot) < listings.SlotCount && e.images[slot] != nil
}

// Analyze completa el formulario desde la foto. Es best effort: si falla solo
// hay aviso y el formulario queda como estaba.
func (e *Editor) Analyze(ctx context.Context, image []byte, mime string) {
	if e.autofill == nil {
		return
	}
	_, err := e.busy.run(ctx, "analyze", func() error {
		s, err := e.autofill.Analyze(ctx, image, mime)
		if err != nil {
			return err
		}
		e.Edit(s.ApplyTo)
		e.Notices.Set(info("Image analysis complete."))
		return nil
	})
	if err != nil {
		e.Notices.Set(NoticeFor(err))
	}
}

// UseCurrentLocation escribe la dirección del dispositivo en Location.
func (e *Editor) UseCurrentLocation(ctx context.Context) {
	if e.locator == nil || e.autofill == nil {
		return
	}
	_, err := e.busy.run(ctx, "locate", func() error {
		lat, lng, err := e.locator.CurrentPosition(ctx)
		if err != nil {
			return err
		}
		loc, err := e.autofill.Locate(ctx, lat, lng)
		if err != nil {
			return err
		}
		e.Edit(func(l *listings.Listing) { l.Location = loc })
		return nil
	})
	if err != nil {
		e.Notices.Set(NoticeFor(err))
	}
}

// Submit valida antes de tocar la red y crea el listing con sus fotos.
// Un segundo Submit mientras el primero sigue en vuelo no hace nada.
func (e *Editor) Submit(ctx context.Context) bool {
	form := e.Form.Get()
	if err := validateForm(form); err != nil {
		e.Notices.Set(NoticeFor(err))
		return false
	}

	var key string
	ran, err := e.busy.run(ctx, "submit", func() error {
		var err error
		key, err = e.store.CreateWithImages(ctx, e.session.UserID, form, e.uploads())
		return err
	})
	if !ran {
		return false
	}
	if err != nil {
		e.Notices.Set(NoticeFor(err))
		return false
	}

	e.reset()
	e.Created.Set(key)
	e.Notices.Set(info("Listing registered."))
	return true
}

// reset deja el formulario como recién abierto: sin campos ni fotos.
func (e *Editor) reset() {
	e.images = [listings.SlotCount]*listings.SlotUpload{}
	e.Form.Set(blankForm())
}

func blankForm() listings.Listing {
	return listings.Listing{Status: string(listings.StatusUnderCare)}
}

func (e *Editor) uploads() []listings.SlotUpload {
	out := make([]listings.SlotUpload, 0, listings.SlotCount)
	for _, up := range e.images {
		if up != nil {
			out = append(out, *up)
		}
	}
	return out
}

// validateForm: el formulario pide además gender, a diferencia del store.
func validateForm(l listings.Listing) error {
	var missing []string
	if strings.TrimSpace(l.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(l.Species) == "" {
		missing = append(missing, "species")
	}
	if strings.TrimSpace(l.Gender) == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}
