package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker rejects calls after FailureThreshold consecutive failures.
// Once OpenTimeout elapsed, up to HalfOpenMaxReq probes are let through; that
// many successes close it again and any failure reopens it.
//
// A nil *CircuitBreaker lets every call through.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int
	successes int
}

// NewCircuitBreaker returns nil when cfg is disabled.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		now:   time.Now,
		state: CircuitStateClosed,
	}
}

// Execute guards fn with the breaker. Only errors for which countable returns
// true are recorded as failures; a nil countable counts every error.
func (b *CircuitBreaker) Execute(fn func() error, countable func(error) bool) error {
	if b == nil {
		return fn()
	}
	if err := b.acquire(); err != nil {
		return err
	}

	err := fn()
	b.release(err != nil && (countable == nil || countable(err)))
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.openElapsed() {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) acquire() error {
	b.mu.Lock()
	from := b.state

	if b.state == CircuitStateOpen {
		if !b.openElapsed() {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.setState(CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.cfg.HalfOpenMaxReq {
			b.mu.Unlock()
			b.notify(from, CircuitStateHalfOpen)
			return ErrCircuitOpen
		}
		b.probes++
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
	return nil
}

func (b *CircuitBreaker) release(failed bool) {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case CircuitStateClosed:
		if !failed {
			b.failures = 0
			break
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.setState(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.probes = max(b.probes-1, 0)
		if failed {
			b.setState(CircuitStateOpen)
			break
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.probes == 0 {
			b.setState(CircuitStateClosed)
		}
	case CircuitStateOpen:
		// A call admitted before the breaker opened finished late.
		if failed {
			b.openedAt = b.now()
		}
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

func (b *CircuitBreaker) openElapsed() bool {
	return b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout
}

// setState resets the counters of the state being entered. Callers hold mu.
func (b *CircuitBreaker) setState(to CircuitState) {
	b.state = to
	b.probes = 0
	b.successes = 0
	switch to {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) notify(from, to CircuitState) {
	if from != to && b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(from, to)
	}
}
