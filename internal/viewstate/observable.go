package viewstate

import "sync"

// Observable guarda un valor y avisa a los suscriptores en cada Set,
// sincrónicamente y en orden de suscripción.
type Observable[T any] struct {
	mu    sync.Mutex
	val   T
	next  int
	order []int
	subs  map[int]func(T)
}

func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{val: initial, subs: make(map[int]func(T))}
}

func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.val
}

func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.val = v
	fns := make([]func(T), 0, len(o.order))
	for _, id := range o.order {
		fns = append(fns, o.subs[id])
	}
	o.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registra fn y devuelve la función para darse de baja.
// fn no se llama con el valor actual.
func (o *Observable[T]) Subscribe(fn func(T)) (cancel func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++
	o.subs[id] = fn
	o.order = append(o.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			for i, v := range o.order {
				if v == id {
					o.order = append(o.order[:i], o.order[i+1:]...)
					break
				}
			}
		})
	}
}
