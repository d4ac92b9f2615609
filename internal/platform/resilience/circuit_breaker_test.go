package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFail = errors.New("fail")

func fail() error    { return errFail }
func succeed() error { return nil }

func newTestBreaker(threshold int, now *time.Time, transitions *[]string) *CircuitBreaker {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
		OnStateChange: func(from, to CircuitState) {
			*transitions = append(*transitions, string(from)+"->"+string(to))
		},
	})
	b.now = func() time.Time { return *now }
	return b
}

func TestCircuitBreaker_Transitions(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	var transitions []string
	b := newTestBreaker(2, &now, &transitions)

	require.ErrorIs(t, b.Execute(fail, nil), errFail)
	assert.Equal(t, CircuitStateClosed, b.State())

	require.ErrorIs(t, b.Execute(fail, nil), errFail)
	assert.Equal(t, CircuitStateOpen, b.State())

	calls := 0
	err := b.Execute(func() error { calls++; return nil }, nil)
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, calls)

	now = now.Add(6 * time.Second)
	assert.Equal(t, CircuitStateHalfOpen, b.State())
	require.NoError(t, b.Execute(succeed, nil))
	assert.Equal(t, CircuitStateClosed, b.State())

	assert.Equal(t, []string{"closed->open", "open->half_open", "half_open->closed"}, transitions)
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	var transitions []string
	b := newTestBreaker(1, &now, &transitions)

	require.ErrorIs(t, b.Execute(fail, nil), errFail)
	now = now.Add(6 * time.Second)
	require.ErrorIs(t, b.Execute(fail, nil), errFail)

	assert.Equal(t, CircuitStateOpen, b.State())
	require.ErrorIs(t, b.Execute(succeed, nil), ErrCircuitOpen)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	now := time.Now()
	var transitions []string
	b := newTestBreaker(2, &now, &transitions)

	require.Error(t, b.Execute(fail, nil))
	require.NoError(t, b.Execute(succeed, nil))
	require.Error(t, b.Execute(fail, nil))

	assert.Equal(t, CircuitStateClosed, b.State())
	assert.Empty(t, transitions)
}

func TestCircuitBreaker_ExecuteOnlyCountsSelectedErrors(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})
	errTransient := errors.New("transient")
	errPermanent := errors.New("permanent")
	isTransient := func(err error) bool { return errors.Is(err, errTransient) }

	require.ErrorIs(t, b.Execute(func() error { return errPermanent }, isTransient), errPermanent)
	assert.Equal(t, CircuitStateClosed, b.State(), "permanent error must not open the breaker")

	require.ErrorIs(t, b.Execute(func() error { return errTransient }, isTransient), errTransient)
	require.ErrorIs(t, b.Execute(succeed, isTransient), ErrCircuitOpen)
}

func TestCircuitBreaker_DisabledIsNil(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false})
	require.Nil(t, b)

	calls := 0
	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error {
			calls++
			return errFail
		}, nil)
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, CircuitStateClosed, b.State())
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	cfg := CircuitBreakerConfig{}.withDefaults()

	assert.Equal(t, defaultFailureThreshold, cfg.FailureThreshold)
	assert.Equal(t, defaultOpenTimeout, cfg.OpenTimeout)
	assert.Equal(t, defaultHalfOpenMaxReq, cfg.HalfOpenMaxReq)
}
