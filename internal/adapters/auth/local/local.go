package local

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-pets/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrTokenEmpty = errors.New("token is empty")

type account struct {
	uid   string
	email string
	hash  []byte
}

// Provider es un proveedor de cuentas en memoria para dev: passwords con
// bcrypt y tokens opacos. Implementa auth.Authenticator y auth.AuthVerifier.
type Provider struct {
	mu      sync.RWMutex
	byEmail map[string]account
	tokens  map[string]auth.Claims
	cost    int
}

func NewProvider() *Provider {
	return &Provider{
		byEmail: make(map[string]account),
		tokens:  make(map[string]auth.Claims),
		cost:    bcrypt.DefaultCost,
	}
}

func (p *Provider) SignUp(ctx context.Context, in auth.SignUpInput) (string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return "", auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), p.cost)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.byEmail[email]; exists {
		return "", auth.ErrEmailTaken
	}
	uid := uuid.NewString()
	p.byEmail[email] = account{uid: uid, email: email, hash: hash}
	return uid, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	email = normalizeEmail(email)

	p.mu.RLock()
	acc, ok := p.byEmail[email]
	p.mu.RUnlock()
	if !ok {
		return auth.Session{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	token := uuid.NewString()
	p.mu.Lock()
	p.tokens[token] = auth.Claims{UserID: acc.uid, Email: acc.email}
	p.mu.Unlock()

	return auth.Session{UserID: acc.uid, Email: acc.email, IDToken: token}, nil
}

func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	c, ok := p.tokens[token]
	if !ok {
		return auth.Claims{}, auth.ErrInvalidCredentials
	}
	return c, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
