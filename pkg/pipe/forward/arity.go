package forward

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/core"
)

// Only the seed may take other than one argument; every appended stage
// receives the single value produced by the stage before it. Pipeline0,
// Pipeline2 and Pipeline3 fix the seed arity in the type, everything after
// the seed is identical across arities.

// Pipeline0 is a forward pipeline whose seed takes no arguments.
type Pipeline0[Out any] struct {
	stamp  pipe.Stamp
	seed   func() any
	stages pipe.Stages
}

func Start0[Out any](seed func() Out) Pipeline0[Out] {
	return Pipeline0[Out]{
		stamp: pipe.NewStamp(),
		seed:  func() any { return seed() },
	}
}

func Then0[Mid, Out any](p Pipeline0[Mid], next func(Mid) Out) Pipeline0[Out] {
	return Pipeline0[Out]{
		stamp:  pipe.NewStamp(),
		seed:   p.seed,
		stages: p.stages.Append(func(v any) any { return next(pipe.As[Mid](v)) }),
	}
}

func (p Pipeline0[Out]) Map(next func(Out) Out) Pipeline0[Out] {
	return Then0(p, next)
}

func (p Pipeline0[Out]) Finalize() func() Out {
	return func() Out {
		return pipe.As[Out](core.Run(p.stages, p.seed()))
	}
}

func (p Pipeline0[Out]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipeline0[Out]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}

// Pipeline2 is a forward pipeline whose seed takes two arguments.
type Pipeline2[A, B, Out any] struct {
	stamp  pipe.Stamp
	seed   func(A, B) any
	stages pipe.Stages
}

func Start2[A, B, Out any](seed func(A, B) Out) Pipeline2[A, B, Out] {
	return Pipeline2[A, B, Out]{
		stamp: pipe.NewStamp(),
		seed:  func(a A, b B) any { return seed(a, b) },
	}
}

func Then2[A, B, Mid, Out any](p Pipeline2[A, B, Mid], next func(Mid) Out) Pipeline2[A, B, Out] {
	return Pipeline2[A, B, Out]{
		stamp:  pipe.NewStamp(),
		seed:   p.seed,
		stages: p.stages.Append(func(v any) any { return next(pipe.As[Mid](v)) }),
	}
}

func (p Pipeline2[A, B, Out]) Map(next func(Out) Out) Pipeline2[A, B, Out] {
	return Then2(p, next)
}

func (p Pipeline2[A, B, Out]) Finalize() func(A, B) Out {
	return func(a A, b B) Out {
		return pipe.As[Out](core.Run(p.stages, p.seed(a, b)))
	}
}

func (p Pipeline2[A, B, Out]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipeline2[A, B, Out]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}

// Pipeline3 is a forward pipeline whose seed takes three arguments.
type Pipeline3[A, B, C, Out any] struct {
	stamp  pipe.Stamp
	seed   func(A, B, C) any
	stages pipe.Stages
}

func Start3[A, B, C, Out any](seed func(A, B, C) Out) Pipeline3[A, B, C, Out] {
	return Pipeline3[A, B, C, Out]{
		stamp: pipe.NewStamp(),
		seed:  func(a A, b B, c C) any { return seed(a, b, c) },
	}
}

func Then3[A, B, C, Mid, Out any](p Pipeline3[A, B, C, Mid], next func(Mid) Out) Pipeline3[A, B, C, Out] {
	return Pipeline3[A, B, C, Out]{
		stamp:  pipe.NewStamp(),
		seed:   p.seed,
		stages: p.stages.Append(func(v any) any { return next(pipe.As[Mid](v)) }),
	}
}

func (p Pipeline3[A, B, C, Out]) Map(next func(Out) Out) Pipeline3[A, B, C, Out] {
	return Then3(p, next)
}

func (p Pipeline3[A, B, C, Out]) Finalize() func(A, B, C) Out {
	return func(a A, b B, c C) Out {
		return pipe.As[Out](core.Run(p.stages, p.seed(a, b, c)))
	}
}

func (p Pipeline3[A, B, C, Out]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipeline3[A, B, C, Out]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}
