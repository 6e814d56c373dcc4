package guard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrBusy: ya hay una operación igual en curso.
var ErrBusy = errors.New("operation already in progress")

// Guard es el "busy flag" por acción: mientras una acción con la misma key
// está en vuelo, un segundo intento no arranca. TryAcquire devuelve un token
// de quien la tomó; Release solo libera si el token sigue siendo el dueño.
type Guard interface {
	TryAcquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string)
}

// Key arma la key de una acción: "listing:update:<uid>:<key>".
func Key(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clean = append(clean, p)
		}
	}
	return strings.Join(clean, ":")
}

// Run ejecuta fn solo si consigue la key, y siempre la libera al terminar.
func Run(ctx context.Context, g Guard, key string, fn func() error) error {
	token, ok, err := g.TryAcquire(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBusy
	}
	defer g.Release(context.WithoutCancel(ctx), key, token)
	return fn()
}

// Local es un Guard en proceso.
type Local struct {
	mu    sync.Mutex
	inUse map[string]string // key -> token
}

func NewLocal() *Local {
	return &Local{inUse: make(map[string]string)}
}

func (l *Local) TryAcquire(_ context.Context, key string) (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.inUse[key]; busy {
		return "", false, nil
	}
	token := uuid.NewString()
	l.inUse[key] = token
	return token, true, nil
}

func (l *Local) Release(_ context.Context, key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inUse[key] == token {
		delete(l.inUse, key)
	}
}

// Busy reporta si key está tomada.
func (l *Local) Busy(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, busy := l.inUse[key]
	return busy
}
