package auth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials: email/password o token rechazados por el proveedor.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken: el proveedor ya tiene una cuenta con ese email.
	ErrEmailTaken = errors.New("email already registered")
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Authenticator da de alta cuentas e inicia sesión con email/password.
type Authenticator interface {
	SignUp(ctx context.Context, in SignUpInput) (uid string, err error)
	SignIn(ctx context.Context, email, password string) (Session, error)
}
