package resilience

import "sync"

// SingleFlight collapses concurrent calls sharing a key into one execution;
// late arrivals block until the leader finishes and receive its result.
// Provider fetches and cache loads both sit behind one of these.
type SingleFlight struct {
	mu     sync.Mutex
	active map[string]*flightResult
}

type flightResult struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per key at a time. The bool reports whether the caller
// received a shared result instead of running fn itself.
func (f *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	f.mu.Lock()
	if f.active == nil {
		f.active = make(map[string]*flightResult)
	}
	if r, ok := f.active[key]; ok {
		f.mu.Unlock()
		<-r.done
		return r.val, r.err, true
	}

	r := &flightResult{done: make(chan struct{})}
	f.active[key] = r
	f.mu.Unlock()

	r.val, r.err = fn()

	f.mu.Lock()
	delete(f.active, key)
	f.mu.Unlock()
	close(r.done)

	return r.val, r.err, false
}
