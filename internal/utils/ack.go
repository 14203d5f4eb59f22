package utils

import (
	"sync"
	"time"
)

// TimedAck is a re-armable single-shot acknowledgment between two goroutines.
// One side arms it before requesting work, the other signals when the work
// lands, and the waiter blocks up to a deadline. A signal that arrives
// between Arm and Wait is not lost.
type TimedAck struct {
	mutex sync.Mutex
	ch    chan struct{}
}

// Arm prepares the ack for one wait. An earlier armed, unsignaled wait is
// abandoned.
func (a *TimedAck) Arm() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.ch = make(chan struct{})
}

// Signal releases the armed waiter, if any. Signals with nobody armed are
// dropped.
func (a *TimedAck) Signal() {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.ch != nil {
		close(a.ch)
		a.ch = nil
	}
}

// Wait blocks until Signal or the timeout and reports whether the signal
// arrived.
func (a *TimedAck) Wait(timeout time.Duration) bool {
	a.mutex.Lock()
	ch := a.ch
	a.mutex.Unlock()

	if ch == nil {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	}
}
