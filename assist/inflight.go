package assist

import "sync"

// Inflight allows at most one outstanding assist call per
// (customer, operation) pair. Overlapping triggers are rejected instead of
// queued; the operator re-clicks once the first call settles.
type Inflight struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func NewInflight() *Inflight {
	return &Inflight{active: make(map[string]struct{})}
}

func (f *Inflight) TryAcquire(customerID, op string) bool {
	key := customerID + "/" + op
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.active[key]; busy {
		return false
	}
	f.active[key] = struct{}{}
	return true
}

func (f *Inflight) Release(customerID, op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.active, customerID+"/"+op)
}
