package forward

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/core"
)

// Pipeline accumulates stages to run after a single-argument seed, in the
// order they were added. It is a value: Then and Map derive new pipelines
// and never mutate the receiver, so one pipeline can branch into many.
type Pipeline[In, Out any] struct {
	stamp  pipe.Stamp
	seed   func(In) any
	stages pipe.Stages
}

// Start begins a forward pipeline from a single-argument seed.
func Start[In, Out any](seed func(In) Out) Pipeline[In, Out] {
	return Pipeline[In, Out]{
		stamp: pipe.NewStamp(),
		seed:  func(in In) any { return seed(in) },
	}
}

// Then appends a stage to run after everything already accumulated. The
// stage consumes the pipeline's current output type and sets the new one.
func Then[In, Mid, Out any](p Pipeline[In, Mid], next func(Mid) Out) Pipeline[In, Out] {
	return Pipeline[In, Out]{
		stamp:  pipe.NewStamp(),
		seed:   p.seed,
		stages: p.stages.Append(func(v any) any { return next(pipe.As[Mid](v)) }),
	}
}

// Map appends a stage that keeps the output type.
func (p Pipeline[In, Out]) Map(next func(Out) Out) Pipeline[In, Out] {
	return Then(p, next)
}

// Finalize flattens the pipeline into a plain function: seed first, then
// every appended stage in order. With no appended stages the result behaves
// exactly as the seed. The pipeline stays usable afterwards; functions
// produced by earlier calls never observe later additions.
func (p Pipeline[In, Out]) Finalize() func(In) Out {
	return func(in In) Out {
		return pipe.As[Out](core.Run(p.stages, p.seed(in)))
	}
}

func (p Pipeline[In, Out]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipeline[In, Out]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}
