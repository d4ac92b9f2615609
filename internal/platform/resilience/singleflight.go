package resilience

import (
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// SingleFlight collapses concurrent calls for the same key into one execution.
// The zero value is ready to use.
type SingleFlight[V any] struct {
	mu    sync.Mutex
	calls map[string]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Do runs fn once per key at a time. shared reports whether the result came
// from another caller's execution. A panic in fn is returned as an error to
// every waiter.
func (g *SingleFlight[V]) Do(key string, fn func() (V, error)) (val V, err error, shared bool) {
	g.mu.Lock()
	if f, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-f.done
		return f.val, f.err, true
	}
	if g.calls == nil {
		g.calls = make(map[string]*flight[V])
	}
	f := &flight[V]{done: make(chan struct{})}
	g.calls[key] = f
	g.mu.Unlock()

	var catcher panics.Catcher
	catcher.Try(func() { f.val, f.err = fn() })
	if recovered := catcher.Recovered(); recovered != nil {
		f.err = fmt.Errorf("singleflight %q: %w", key, recovered.AsError())
	}

	g.mu.Lock()
	if g.calls[key] == f {
		delete(g.calls, key)
	}
	g.mu.Unlock()
	close(f.done)

	return f.val, f.err, false
}

// Forget drops the in-flight call for key so the next Do starts a new one.
// Callers already waiting still get the old result.
func (g *SingleFlight[V]) Forget(key string) {
	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
}
