package resilience

import "time"

const (
	defaultFailureThreshold = 3
	defaultOpenTimeout      = 30 * time.Second
	defaultHalfOpenMaxReq   = 1
)

// CircuitBreakerConfig configures a breaker for one outbound dependency.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
	// OnStateChange runs after every transition, outside the breaker lock.
	OnStateChange func(from, to CircuitState)
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultFailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultHalfOpenMaxReq
	}
	return c
}
