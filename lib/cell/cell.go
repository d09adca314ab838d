// Package cell holds a single mutable value behind a getter and a setter.
//
// Components that depend on a changing selection, such as the current
// language, take the Get method value rather than the value itself, so the
// selection is resolved each time they render.
package cell

import "go.uber.org/atomic"

// Cell is a mutable value with one writer and any number of readers.
// A Cell must be created with New.
type Cell[T any] struct {
	v *atomic.Pointer[T]
}

// New returns a Cell holding initial.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{v: atomic.NewPointer(&initial)}
}

// Get returns the value passed to the most recent Set, or the initial value.
func (c *Cell[T]) Get() T {
	return *c.v.Load()
}

// Set replaces the value. No history is kept and nobody is notified.
func (c *Cell[T]) Set(v T) {
	c.v.Store(&v)
}
