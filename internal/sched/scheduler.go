// Package sched is a discrete-event scheduler for fixed-rate game timers.
//
// Time is virtual: nothing fires until the host calls Advance, and every
// callback runs synchronously on the caller's goroutine. A session armed on a
// Scheduler therefore never sees two handlers overlap, and the host decides
// how wall-clock time maps onto game time (one frame per Bubble Tea tick in
// the terminal host, explicit steps in tests).
package sched

import "time"

// Scheduler owns a virtual clock and the periodic timers armed on it.
// It is not safe for concurrent use; drive it from one goroutine.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// Timer is one periodic event. Obtain it from Scheduler.Every.
type Timer struct {
	sched   *Scheduler
	period  time.Duration
	due     time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

// New creates a scheduler at virtual time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every arms fn to run each period, first at Now()+period.
// Panics if period is not positive.
func (s *Scheduler) Every(period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic("sched: timer period must be positive")
	}
	s.seq++
	t := &Timer{
		sched:  s,
		period: period,
		due:    s.now + period,
		seq:    s.seq,
		fn:     fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every due event in time order.
// Events due at the same instant fire in the order their timers were armed.
// A callback may stop any timer, including its own, or arm new ones.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	target := s.now + d
	fired := 0

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.due
		next.due += next.period
		next.fn()
		fired++
	}

	s.now = target
	s.compact()
	return fired
}

// Pending returns the number of active timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// nextDue finds the earliest active timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops stopped timers so long-lived hosts do not accumulate them.
func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Stop cancels the timer. Safe on a nil timer and safe to call twice.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Period returns the timer's interval.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Group ties a set of timers to one owner's lifetime so they can be
// cancelled together. The zero value is ready to use.
type Group struct {
	timers []*Timer
}

// Add tracks t and returns it.
func (g *Group) Add(t *Timer) *Timer {
	g.timers = append(g.timers, t)
	return t
}

// StopAll cancels every tracked timer and forgets them.
// Calling it on an empty group is a no-op.
func (g *Group) StopAll() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = g.timers[:0]
}

// Len returns how many timers the group tracks.
func (g *Group) Len() int {
	return len(g.timers)
}
