package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlightCoalescesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var loads atomic.Int64
	started := make(chan struct{})
	release := make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	results := make([]any, callers)

	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err, _ := flight.Do("key", func() (any, error) {
				if loads.Add(1) == 1 {
					close(started)
				}
				<-release
				return "value", nil
			})
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
			}
			results[i] = val
		}()
	}

	// Wait for the first loader so the remaining callers pile onto it.
	<-started
	close(release)
	wg.Wait()

	if got := loads.Load(); got < 1 || got > callers {
		t.Fatalf("loads = %d", got)
	}
	for i := 0; i < callers; i++ {
		if results[i] != "value" {
			t.Fatalf("caller %d got %v", i, results[i])
		}
	}
}

func TestSingleFlightPropagatesError(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	wantErr := errors.New("load failed")

	_, err, shared := flight.Do("key", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if shared {
		t.Fatal("single call reported as shared")
	}
}

func TestSingleFlightSequentialCallsRunIndependently(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	calls := 0

	for i := 0; i < 3; i++ {
		val, err, shared := flight.Do("key", func() (any, error) {
			calls++
			return calls, nil
		})
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if shared {
			t.Fatalf("call %d reported as shared", i)
		}
		if val != i+1 {
			t.Fatalf("call %d got %v, want %d", i, val, i+1)
		}
	}
}
