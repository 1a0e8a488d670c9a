// Package app owns the live state and serialises dispatches to the reducer.
package app

import (
	"errors"
	"slices"
	"sync"

	"github.com/sandeepkv93/tasklists/internal/model"
	"github.com/sandeepkv93/tasklists/internal/update"
)

type Listener func(state model.State)

// ErrRejected matches every *RejectedError.
var ErrRejected = errors.New("app: action rejected")

// RejectedError carries the message the reducer stored in State.Error.
type RejectedError struct {
	Action  string
	Message string
}

func (e *RejectedError) Error() string { return e.Message }

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }

type Container struct {
	mu        sync.Mutex
	reducer   *update.Reducer
	state     model.State
	nextSubID int
	listeners map[int]Listener
}

func NewContainer(reducer *update.Reducer, initial model.State) *Container {
	return &Container{
		reducer:   reducer,
		state:     initial.Clone(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch applies msg and notifies subscribers with the resulting state.
// Listeners run synchronously after the lock is released.
func (c *Container) Dispatch(msg update.Msg) model.State {
	return c.reduce(msg, false)
}

// Apply clears any previous error, dispatches msg and reports a rejection
// as a *RejectedError. The returned state is valid either way.
func (c *Container) Apply(msg update.Msg) (model.State, error) {
	next := c.reduce(msg, true)
	if next.Error != nil {
		return next, &RejectedError{Action: msg.ActionType(), Message: *next.Error}
	}
	return next, nil
}

func (c *Container) reduce(msg update.Msg, clearError bool) model.State {
	c.mu.Lock()
	current := c.state
	if clearError && current.Error != nil {
		current = current.Clone()
		current.Error = nil
	}
	next := c.reducer.Reduce(current, msg)
	c.state = next
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone())
	}
	return next.Clone()
}

// Hydrate replaces the state without persisting it.
func (c *Container) Hydrate(state model.State) {
	c.mu.Lock()
	c.state = state.Clone()
	next := c.state
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone())
	}
}

func (c *Container) State() model.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Subscribe registers l and returns a function that removes it.
func (c *Container) Subscribe(l Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.listeners[id] = l
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Container) snapshotListeners() []Listener {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]Listener, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.listeners[id])
	}
	return out
}
