package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Allow while calls to the guarded provider
// are being shed.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState int8

const (
	CircuitStateClosed CircuitState = iota
	CircuitStateOpen
	CircuitStateHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitStateOpen:
		return "open"
	case CircuitStateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreaker sheds calls to one provider endpoint after a run of
// consecutive failures. Once the open window elapses a bounded number of
// probe requests may pass; the breaker closes only when every probe lands.
type CircuitBreaker struct {
	mu sync.Mutex

	openWindow time.Duration
	tripCount  int
	maxProbes  int

	state     CircuitState
	failures  int
	openedAt  time.Time
	probes    int // half-open requests currently in flight
	probeWins int // successful probes since entering half-open
	now       func() time.Time
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = 15 * time.Second
	}
	if halfOpenMaxReq < 1 {
		halfOpenMaxReq = 1
	}

	return &CircuitBreaker{
		tripCount:  failureThreshold,
		openWindow: openTimeout,
		maxProbes:  halfOpenMaxReq,
		now:        time.Now,
	}
}

// Allow reports whether a request may proceed, reserving a probe slot when
// the breaker is half-open.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.openWindow {
			return ErrCircuitOpen
		}
		b.state = CircuitStateHalfOpen
		b.probes = 0
		b.probeWins = 0
	}

	if b.state == CircuitStateHalfOpen {
		if b.probes >= b.maxProbes {
			return ErrCircuitOpen
		}
		b.probes++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.settleProbe()
		b.probeWins++
		if b.probeWins >= b.maxProbes && b.probes == 0 {
			b.reset()
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.tripCount {
			b.trip()
		}
	case CircuitStateHalfOpen:
		b.settleProbe()
		b.trip()
	case CircuitStateOpen:
		// Failures while open restart the window, e.g. from a request that
		// was already in flight when the breaker tripped.
		b.openedAt = b.now()
	}
}

// State reports the effective state, folding an elapsed open window into
// half_open without mutating anything.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.openWindow {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) settleProbe() {
	if b.probes > 0 {
		b.probes--
	}
}

func (b *CircuitBreaker) trip() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.probes = 0
	b.probeWins = 0
}

func (b *CircuitBreaker) reset() {
	b.state = CircuitStateClosed
	b.failures = 0
	b.probes = 0
	b.probeWins = 0
	b.openedAt = time.Time{}
}
