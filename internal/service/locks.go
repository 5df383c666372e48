package service

import "sync"

// vehicleLocks serializes writes per vehicle.  The store contract has
// no compare-and-swap, so the availability check and the subsequent
// insert/replace must run under one critical section keyed by vehicle
// id to keep overlapping submissions from both passing the check.
type vehicleLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newVehicleLocks() *vehicleLocks {
	return &vehicleLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given vehicle id and returns the
// matching unlock function.  Locks are never evicted; the fleet is
// small and bounded.
func (l *vehicleLocks) acquire(vehicleID string) func() {
	l.mu.Lock()
	m, ok := l.locks[vehicleID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[vehicleID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
