package reverse

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/core"
)

// Only the earliest-running stage may take other than one argument: every
// later stage receives the single value its predecessor returned. Supplying
// such a stage therefore closes the chain — the terminal builders below can
// only be finalized, no Before accepts them.

// Terminal2 is a closed reverse pipeline whose first stage takes two
// arguments.
type Terminal2[A, B, Out any] struct {
	stamp  pipe.Stamp
	first  func(A, B) any
	stages pipe.Stages
}

// Before2 closes the pipeline with a two-argument first stage.
func Before2[A, B, X, Out any](p Pipeline[X, Out], first func(A, B) X) Terminal2[A, B, Out] {
	return Terminal2[A, B, Out]{
		stamp:  pipe.NewStamp(),
		first:  func(a A, b B) any { return first(a, b) },
		stages: p.stages,
	}
}

func (t Terminal2[A, B, Out]) Finalize() func(A, B) Out {
	return func(a A, b B) Out {
		return pipe.As[Out](core.RunBack(t.stages, t.first(a, b)))
	}
}

func (t Terminal2[A, B, Out]) Id() uuid.UUID {
	return t.stamp.Id()
}

func (t Terminal2[A, B, Out]) CreatedAt() time.Time {
	return t.stamp.CreatedAt()
}

// Terminal3 is a closed reverse pipeline whose first stage takes three
// arguments.
type Terminal3[A, B, C, Out any] struct {
	stamp  pipe.Stamp
	first  func(A, B, C) any
	stages pipe.Stages
}

// Before3 closes the pipeline with a three-argument first stage.
func Before3[A, B, C, X, Out any](p Pipeline[X, Out], first func(A, B, C) X) Terminal3[A, B, C, Out] {
	return Terminal3[A, B, C, Out]{
		stamp:  pipe.NewStamp(),
		first:  func(a A, b B, c C) any { return first(a, b, c) },
		stages: p.stages,
	}
}

func (t Terminal3[A, B, C, Out]) Finalize() func(A, B, C) Out {
	return func(a A, b B, c C) Out {
		return pipe.As[Out](core.RunBack(t.stages, t.first(a, b, c)))
	}
}

func (t Terminal3[A, B, C, Out]) Id() uuid.UUID {
	return t.stamp.Id()
}

func (t Terminal3[A, B, C, Out]) CreatedAt() time.Time {
	return t.stamp.CreatedAt()
}

// Terminal0 is a closed reverse pipeline whose first stage takes no
// arguments. A zero-argument stage has no input an earlier stage could
// produce, so it closes the chain the same way a multi-argument one does.
type Terminal0[Out any] struct {
	stamp  pipe.Stamp
	first  func() any
	stages pipe.Stages
}

// Before0 closes the pipeline with a zero-argument first stage.
func Before0[X, Out any](p Pipeline[X, Out], first func() X) Terminal0[Out] {
	return Terminal0[Out]{
		stamp:  pipe.NewStamp(),
		first:  func() any { return first() },
		stages: p.stages,
	}
}

func (t Terminal0[Out]) Finalize() func() Out {
	return func() Out {
		return pipe.As[Out](core.RunBack(t.stages, t.first()))
	}
}

func (t Terminal0[Out]) Id() uuid.UUID {
	return t.stamp.Id()
}

func (t Terminal0[Out]) CreatedAt() time.Time {
	return t.stamp.CreatedAt()
}
