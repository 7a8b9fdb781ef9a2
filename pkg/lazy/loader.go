package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	mu       sync.Mutex
	provider func() (T, error)
	done     bool
	value    T
	err      error
}

func New[T any](provider func() (T, error)) Loader[T] {
	return &loader[T]{provider: provider}
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

// Load runs the provider once; later calls return the memoized value or error.
func (l *loader[T]) Load() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done {
		return l.value, l.err
	}

	l.done = true
	l.value, l.err = l.provider()
	if l.err != nil {
		l.err = fmt.Errorf("load value of %T: %w", l.value, l.err)
	}

	return l.value, l.err
}

func (l *loader[T]) IfLoaded(f func(T)) {
	l.mu.Lock()
	loaded := l.done && l.err == nil
	value := l.value
	l.mu.Unlock()

	if loaded {
		f(value)
	}
}
