package frame

import (
	"context"
	"time"
)

// Ticker flushes a queue at a fixed rate. It stands in for the display
// refresh on hosts without one.
type Ticker struct {
	queue    *Queue
	interval time.Duration
	inbox    chan func()
}

// NewTicker returns a ticker flushing q fps times per second.
func NewTicker(q *Queue, fps int) *Ticker {
	if fps <= 0 {
		fps = 60
	}
	return &Ticker{
		queue:    q,
		interval: time.Second / time.Duration(fps),
		inbox:    make(chan func(), 100),
	}
}

// Interval returns the time between flushes.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Post hands fn to the goroutine running Run. It is the only Ticker method
// safe to call from other goroutines. Post blocks while the inbox is full.
func (t *Ticker) Post(ctx context.Context, fn func()) {
	select {
	case t.inbox <- fn:
	case <-ctx.Done():
	}
}

// Run flushes on every tick until ctx is done. Posted functions run between
// flushes. after is called following each flush with the number of
// callbacks that ran, e.g. to present the frame.
func (t *Ticker) Run(ctx context.Context, after func(ran int)) error {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-t.inbox:
			fn()
		case <-tk.C:
			ran := t.queue.Flush()
			if after != nil {
				after(ran)
			}
		}
	}
}
