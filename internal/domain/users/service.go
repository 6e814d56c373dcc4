package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stray-pets/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("profile not found")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// fallbackName cuando no hay nickname ni email.
const fallbackName = "user"

type Service struct {
	repo  Repository
	authn auth.Authenticator
	now   func() time.Time
}

func NewService(repo Repository, authn auth.Authenticator) *Service {
	return &Service{
		repo:  repo,
		authn: authn,
		now:   time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Nickname string
}

// Register da de alta la cuenta y escribe el perfil con CreationDate = ahora.
func (s *Service) Register(ctx context.Context, in RegisterInput) (UserProfile, error) {
	email := strings.TrimSpace(in.Email)
	nickname := strings.TrimSpace(in.Nickname)
	if email == "" || strings.TrimSpace(in.Password) == "" || nickname == "" {
		return UserProfile{}, ErrInvalidInput
	}

	uid, err := s.authn.SignUp(ctx, auth.SignUpInput{
		Email:       email,
		Password:    in.Password,
		DisplayName: nickname,
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return UserProfile{}, ErrEmailTaken
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return UserProfile{}, ErrInvalidInput
		}
		return UserProfile{}, fmt.Errorf("%w: sign up: %v", ErrStoreUnavailable, err)
	}

	p := UserProfile{
		UID:          uid,
		Nickname:     nickname,
		CreationDate: s.now().UTC(),
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return UserProfile{}, fmt.Errorf("%w: write profile: %v", ErrStoreUnavailable, err)
	}
	return p, nil
}

func (s *Service) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return auth.Session{}, ErrInvalidInput
	}

	sess, err := s.authn.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return auth.Session{}, ErrInvalidCredentials
		}
		return auth.Session{}, fmt.Errorf("%w: sign in: %v", ErrStoreUnavailable, err)
	}
	return sess, nil
}

func (s *Service) Profile(ctx context.Context, uid string) (UserProfile, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return UserProfile{}, ErrInvalidInput
	}
	p, err := s.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return UserProfile{}, ErrNotFound
		}
		return UserProfile{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return p, nil
}

// DisplayName: nickname si el perfil se puede leer, si no el email.
// Un fallo leyendo el perfil no es error para quien llama.
func (s *Service) DisplayName(ctx context.Context, uid, email string) string {
	if p, err := s.Profile(ctx, uid); err == nil && strings.TrimSpace(p.Nickname) != "" {
		return p.Nickname
	}
	if email = strings.TrimSpace(email); email != "" {
		return email
	}
	return fallbackName
}
