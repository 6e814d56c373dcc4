package viewstate

import (
	"context"
	"errors"
	"sync/atomic"

	"stray-pets/internal/platform/guard"
)

// busy envuelve guard.Local para una pantalla: una acción ya en curso es no-op.
// State es true mientras haya al menos una acción en vuelo.
type busy struct {
	g        *guard.Local
	inFlight atomic.Int32
	State    *Observable[bool]
}

func newBusy() *busy {
	return &busy{g: guard.NewLocal(), State: NewObservable(false)}
}

// run ejecuta fn si key está libre. ran=false si ya había una en curso.
func (b *busy) run(ctx context.Context, key string, fn func() error) (ran bool, err error) {
	err = guard.Run(ctx, b.g, key, func() error {
		ran = true
		if b.inFlight.Add(1) == 1 {
			b.State.Set(true)
		}
		defer func() {
			if b.inFlight.Add(-1) == 0 {
				b.State.Set(false)
			}
		}()
		return fn()
	})
	if errors.Is(err, guard.ErrBusy) {
		return false, nil
	}
	return ran, err
}
