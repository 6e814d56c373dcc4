package viewstate

import (
	"errors"

	"stray-pets/internal/domain/autofill"
	"stray-pets/internal/domain/listings"
	"stray-pets/internal/domain/users"
)

var (
	// ErrPermissionDenied: el usuario no dio permiso de ubicación o de fotos.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrMissingFields: faltan campos obligatorios del formulario.
	ErrMissingFields = errors.New("required fields missing")
)

type NoticeKind string

const (
	NoticeInfo  NoticeKind = "info"
	NoticeError NoticeKind = "error"
)

// Notice es el mensaje que ve el usuario. Los errores terminan acá y no siguen subiendo.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func info(msg string) Notice {
	return Notice{Kind: NoticeInfo, Message: msg}
}

// NoticeFor traduce un error a un mensaje para el usuario.
func NoticeFor(err error) Notice {
	msg := "Something went wrong. Please try again."
	switch {
	case errors.Is(err, ErrMissingFields):
		msg = "Please fill in name, species and gender."
	case errors.Is(err, listings.ErrValidation), errors.Is(err, users.ErrInvalidInput):
		msg = "Please check the required fields."
	case errors.Is(err, listings.ErrNotFound):
		msg = "This listing no longer exists."
	case errors.Is(err, listings.ErrStoreUnavailable), errors.Is(err, users.ErrStoreUnavailable):
		msg = "Could not reach the server. Please try again."
	case errors.Is(err, autofill.ErrAnalysisFailed):
		msg = "Image analysis failed. Please fill in the details manually."
	case errors.Is(err, autofill.ErrInvalidInput), errors.Is(err, autofill.ErrLookupFailed):
		msg = "Could not find an address for your location."
	case errors.Is(err, ErrPermissionDenied):
		msg = "Location permission is required."
	case errors.Is(err, users.ErrInvalidCredentials):
		msg = "Invalid email or password."
	}
	return Notice{Kind: NoticeError, Message: msg}
}
