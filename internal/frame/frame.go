// Package frame provides the frame scheduler capability: callbacks are
// requested for the next display refresh and may be cancelled before they
// run.
package frame

// Callback runs once on a frame.
type Callback func()

// Handle identifies a pending request. The zero Handle is never issued.
type Handle uint64

// Scheduler invokes a callback once before the next refresh.
type Scheduler interface {
	Request(cb Callback) Handle
	Cancel(h Handle)
}
