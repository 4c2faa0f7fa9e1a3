// Package sched provides the one-shot callback scheduling that the runner's
// tick and spawn loops are built on.
//
// The production implementation is a virtual Clock: frontends advance it
// from their frame loop, so every callback runs on the frontend's goroutine
// and tests can drive time deterministically.
package sched

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle never refers to
// a pending callback, so cancelling it is always safe.
type Handle uint64

// Scheduler runs callbacks once after a delay and can revoke them.
type Scheduler interface {
	// After schedules fn to run once, d after the current time.
	After(d time.Duration, fn func()) Handle

	// Cancel revokes a pending callback. Cancelling a callback that already
	// fired, was already cancelled, or never existed is a no-op.
	Cancel(h Handle)
}

// timer is a pending callback in the clock's queue.
type timer struct {
	at    time.Duration
	seq   uint64
	fn    func()
	index int
}

// timerQueue orders timers by due time, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Clock is a virtual-time Scheduler. Time only moves when Advance is called.
// A Clock is not safe for concurrent use; it belongs to one frame loop.
type Clock struct {
	now     time.Duration
	seq     uint64
	queue   timerQueue
	pending map[Handle]*timer
}

// NewClock creates a clock at virtual time zero.
func NewClock() *Clock {
	return &Clock{
		pending: make(map[Handle]*timer),
	}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of callbacks waiting to fire.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// After schedules fn to run once when the clock reaches Now()+d.
// Negative delays are treated as zero.
func (c *Clock) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &timer{
		at:  c.now + d,
		seq: c.seq,
		fn:  fn,
	}
	heap.Push(&c.queue, t)
	h := Handle(t.seq)
	c.pending[h] = t
	return h
}

// Cancel revokes a pending callback.
func (c *Clock) Cancel(h Handle) {
	t, ok := c.pending[h]
	if !ok {
		return
	}
	delete(c.pending, h)
	heap.Remove(&c.queue, t.index)
}

// Advance moves virtual time forward by d, running every callback that
// becomes due, in due-time order. Callbacks scheduled by a running callback
// fire within the same Advance if they fall due before its end.
func (c *Clock) Advance(d time.Duration) {
	target := c.now + d
	for c.queue.Len() > 0 && c.queue[0].at <= target {
		t := heap.Pop(&c.queue).(*timer)
		delete(c.pending, Handle(t.seq))
		c.now = t.at
		t.fn()
	}
	if target > c.now {
		c.now = target
	}
}
