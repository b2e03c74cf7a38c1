package eager

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/pipe3/pkg/pipe"
)

// Pipe wraps a single value. Unlike the pipeline builders it is eager:
// every transformation is applied the moment it is supplied, and the
// derived pipe wraps the result while the receiver stays valid and
// reusable.
type Pipe[T any] struct {
	stamp pipe.Stamp
	value T
}

// From wraps an initial value.
func From[T any](v T) Pipe[T] {
	return Pipe[T]{
		stamp: pipe.NewStamp(),
		value: v,
	}
}

// Then applies fn to the wrapped value right away and returns a pipe
// wrapping the result.
func Then[T, U any](p Pipe[T], fn func(T) U) Pipe[U] {
	return Pipe[U]{
		stamp: pipe.NewStamp(),
		value: fn(p.value),
	}
}

// Map is Then for transformations that keep the type.
func (p Pipe[T]) Map(fn func(T) T) Pipe[T] {
	return Then(p, fn)
}

// Tap runs a side effect on the wrapped value and returns an equivalent
// pipe without changing the value.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	fn(p.value)
	return Pipe[T]{
		stamp: pipe.NewStamp(),
		value: p.value,
	}
}

// Value unwraps the currently wrapped value.
func (p Pipe[T]) Value() T {
	return p.value
}

func (p Pipe[T]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipe[T]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}
