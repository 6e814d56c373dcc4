package identitytoolkit

import (
	"context"
	"fmt"
	"strings"

	"stray-pets/internal/ports/auth"

	fbauth "firebase.google.com/go/v4/auth"
)

// userCreator es la parte de *fbauth.Client que usamos para el alta.
type userCreator interface {
	CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
}

// Authenticator: alta con el SDK admin, sign-in con el REST de Identity Toolkit.
type Authenticator struct {
	users  userCreator
	signIn *Client
}

func NewAuthenticator(users userCreator, signIn *Client) *Authenticator {
	return &Authenticator{users: users, signIn: signIn}
}

func (a *Authenticator) SignUp(ctx context.Context, in auth.SignUpInput) (string, error) {
	if a.users == nil {
		return "", ErrNotConfigured
	}

	params := (&fbauth.UserToCreate{}).
		Email(strings.TrimSpace(in.Email)).
		Password(in.Password)
	if n := strings.TrimSpace(in.DisplayName); n != "" {
		params = params.DisplayName(n)
	}

	rec, err := a.users.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", auth.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	return rec.UID, nil
}

func (a *Authenticator) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	return a.signIn.SignIn(ctx, email, password)
}
