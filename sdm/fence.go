package sdm

import "time"

// Fence is a one-way synchronization point handed across the hardware
// boundary. A nil Fence is always treated as already signaled.
type Fence interface {
	// Wait blocks until the fence signals
	Wait() error
	// WaitTimeout blocks until the fence signals or the timeout elapses, in
	// which case it returns ErrTimeOut
	WaitTimeout(timeout time.Duration) error
}

// WaitFence waits on a fence, tolerating nil.
func WaitFence(f Fence) error {
	if f == nil {
		return nil
	}
	return f.Wait()
}
