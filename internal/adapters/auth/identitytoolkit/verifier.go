package identitytoolkit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stray-pets/internal/ports/auth"

	fbauth "firebase.google.com/go/v4/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// tokenVerifier es la parte de *fbauth.Client que usamos.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// Verifier implementa auth.AuthVerifier con el SDK admin.
type Verifier struct {
	client tokenVerifier
}

func NewVerifier(client tokenVerifier) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify id token: %w", err)
	}
	uid := strings.TrimSpace(tok.UID)
	if uid == "" {
		return auth.Claims{}, errors.New("token missing uid")
	}

	email, _ := tok.Claims["email"].(string)
	return auth.Claims{UserID: uid, Email: strings.TrimSpace(email)}, nil
}
