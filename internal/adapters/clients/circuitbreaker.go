package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/ecotips/internal/platform/config"
)

// State is the position of a CircuitBreaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota

	// StateOpen rejects requests until the cool-down elapses.
	StateOpen

	// StateHalfOpen lets a limited number of probes through.
	StateHalfOpen
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Transition describes one state change of a CircuitBreaker.
type Transition struct {
	From State
	To   State
}

// CircuitBreaker stops calling the tips API after repeated failures.
//
// State transitions:
//   - Closed → Open after MaxFailures consecutive failures
//   - Open → HalfOpen once Timeout has passed since the last failure
//   - HalfOpen → Closed after HalfOpenLimit consecutive successes
//   - HalfOpen → Open on any failure
type CircuitBreaker struct {
	mu sync.Mutex

	cfg      config.CircuitBreakerConfig
	state    State
	failures int
	passes   int
	probes   int
	lastFail time.Time

	listener func(Transition)
	now      func() time.Time
}

// NewCircuitBreaker creates a closed breaker. listener, if not nil, is called
// after every state change, outside the breaker's lock.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig, listener func(Transition)) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{
		cfg:      cfg,
		listener: listener,
		now:      time.Now,
	}
}

// Allow reports whether a request may proceed. A true result must be followed
// by exactly one call to Record.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var (
		allowed bool
		changed *Transition
	)

	switch cb.state {
	case StateClosed:
		allowed = true

	case StateOpen:
		if cb.now().Sub(cb.lastFail) >= cb.cfg.Timeout {
			changed = cb.moveTo(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}

	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.mu.Unlock()
	cb.notify(changed)

	return allowed
}

// Record reports the outcome of an allowed request.
func (cb *CircuitBreaker) Record(success bool) {
	cb.mu.Lock()

	var changed *Transition

	if success {
		changed = cb.onSuccess()
	} else {
		changed = cb.onFailure()
	}

	cb.mu.Unlock()
	cb.notify(changed)
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

func (cb *CircuitBreaker) onSuccess() *Transition {
	switch cb.state {
	case StateClosed:
		cb.failures = 0

	case StateHalfOpen:
		cb.probes--
		cb.passes++

		if cb.passes >= cb.cfg.HalfOpenLimit {
			return cb.moveTo(StateClosed)
		}
	}

	return nil
}

func (cb *CircuitBreaker) onFailure() *Transition {
	cb.lastFail = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++

		if cb.failures >= cb.cfg.MaxFailures {
			return cb.moveTo(StateOpen)
		}

	case StateHalfOpen:
		cb.probes--

		return cb.moveTo(StateOpen)
	}

	return nil
}

// moveTo must be called with mu held.
func (cb *CircuitBreaker) moveTo(to State) *Transition {
	if cb.state == to {
		return nil
	}

	t := &Transition{From: cb.state, To: to}

	cb.state = to
	cb.failures = 0
	cb.passes = 0

	return t
}

func (cb *CircuitBreaker) notify(t *Transition) {
	if t != nil && cb.listener != nil {
		cb.listener(*t)
	}
}
