// Package scheduler emits an event when a task reaches its due date.
package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/tasklists/internal/model"
)

var (
	ErrInvalidDueTime = errors.New("scheduler: invalid due time")
	ErrStopped        = errors.New("scheduler: engine stopped")
)

// DueEvent fires when a task reaches its due date.
type DueEvent struct {
	TaskID string
	Title  string
	DueAt  time.Time
}

// EventsFromState returns one event per incomplete task due after now.
func EventsFromState(state model.State, now time.Time) []DueEvent {
	out := make([]DueEvent, 0)
	for _, t := range state.Tasks {
		if t.IsCompleted || t.DueDate == nil {
			continue
		}
		due := time.UnixMilli(*t.DueDate)
		if !due.After(now) {
			continue
		}
		out = append(out, DueEvent{TaskID: t.ID, Title: t.Title, DueAt: due})
	}
	return out
}

// dueQueue is a min-heap on DueAt; equal times pop in TaskID order.
type dueQueue []DueEvent

func (q dueQueue) Len() int { return len(q) }

func (q dueQueue) Less(i, j int) bool {
	if q[i].DueAt.Equal(q[j].DueAt) {
		return q[i].TaskID < q[j].TaskID
	}
	return q[i].DueAt.Before(q[j].DueAt)
}

func (q dueQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *dueQueue) Push(x any) { *q = append(*q, x.(DueEvent)) }

func (q *dueQueue) Pop() any {
	n := len(*q) - 1
	ev := (*q)[n]
	*q = (*q)[:n]
	return ev
}

// Engine delivers due events on C. Delivery never blocks: when the buffer is
// full the event is counted in Dropped and discarded.
type Engine struct {
	mu      sync.Mutex
	pending dueQueue
	running bool
	closed  bool

	events  chan DueEvent
	changed chan struct{}
	quit    chan struct{}
	done    chan struct{}
	dropped atomic.Uint64
}

func NewEngine(buffer int) *Engine {
	return &Engine{
		events:  make(chan DueEvent, max(buffer, 1)),
		changed: make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// C is closed once the engine stops.
func (e *Engine) C() <-chan DueEvent {
	return e.events
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running || e.closed {
		return
	}
	e.running = true
	go e.run()
}

// Stop waits for the delivery goroutine to exit. It is safe to call twice.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if !e.running {
		close(e.events)
		e.mu.Unlock()
		return
	}
	close(e.quit)
	e.mu.Unlock()
	<-e.done
}

func (e *Engine) Schedule(ev DueEvent) error {
	if ev.DueAt.IsZero() {
		return ErrInvalidDueTime
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrStopped
	}
	heap.Push(&e.pending, ev)
	e.notify()
	return nil
}

// Reset replaces every pending event. Events with a zero due time are skipped.
func (e *Engine) Reset(events []DueEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrStopped
	}
	next := make(dueQueue, 0, len(events))
	for _, ev := range events {
		if !ev.DueAt.IsZero() {
			next = append(next, ev)
		}
	}
	heap.Init(&next)
	e.pending = next
	e.notify()
	return nil
}

func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending.Len()
}

func (e *Engine) Dropped() uint64 {
	return e.dropped.Load()
}

func (e *Engine) notify() {
	select {
	case e.changed <- struct{}{}:
	default:
	}
}

func (e *Engine) run() {
	defer close(e.done)
	defer close(e.events)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		var fire <-chan time.Time
		if at, ok := e.nextDue(); ok {
			timer.Reset(max(time.Until(at), 0))
			fire = timer.C
		}

		select {
		case <-fire:
			for _, ev := range e.takeDue(time.Now()) {
				e.deliver(ev)
			}
		case <-e.changed:
			timer.Stop()
		case <-e.quit:
			return
		}
	}
}

func (e *Engine) deliver(ev DueEvent) {
	select {
	case e.events <- ev:
	default:
		e.dropped.Add(1)
	}
}

func (e *Engine) nextDue() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending.Len() == 0 {
		return time.Time{}, false
	}
	return e.pending[0].DueAt, true
}

// takeDue pops every event due at or before now.
func (e *Engine) takeDue(now time.Time) []DueEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []DueEvent
	for e.pending.Len() > 0 && !e.pending[0].DueAt.After(now) {
		out = append(out, heap.Pop(&e.pending).(DueEvent))
	}
	return out
}
