package reverse

import (
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/core"
)

// Pipeline accumulates stages where each newly added one runs before
// everything added earlier. In is the input of the earliest-running stage,
// Out the output of the terminal stage supplied to Start.
type Pipeline[In, Out any] struct {
	stamp  pipe.Stamp
	stages pipe.Stages // terminal stage at index 0; later additions run earlier
}

// Start begins a reverse pipeline from the terminal (last executed) stage.
func Start[X, R any](terminal func(X) R) Pipeline[X, R] {
	return Pipeline[X, R]{
		stamp:  pipe.NewStamp(),
		stages: pipe.Stages{func(v any) any { return terminal(pipe.As[X](v)) }},
	}
}

// Before prepends a stage in execution order: it will run before everything
// already accumulated, and its output feeds the current earliest stage.
func Before[Y, X, Out any](p Pipeline[X, Out], earlier func(Y) X) Pipeline[Y, Out] {
	return Pipeline[Y, Out]{
		stamp:  pipe.NewStamp(),
		stages: p.stages.Append(func(v any) any { return earlier(pipe.As[Y](v)) }),
	}
}

// Map prepends a stage that keeps the input type.
func (p Pipeline[In, Out]) Map(earlier func(In) In) Pipeline[In, Out] {
	return Before(p, earlier)
}

// Finalize flattens the pipeline into a plain function taking the earliest
// stage's argument and threading its result through every later-added stage
// up to the terminal one. The pipeline stays usable afterwards.
func (p Pipeline[In, Out]) Finalize() func(In) Out {
	return func(in In) Out {
		return pipe.As[Out](core.RunBack(p.stages, in))
	}
}

func (p Pipeline[In, Out]) Id() uuid.UUID {
	return p.stamp.Id()
}

func (p Pipeline[In, Out]) CreatedAt() time.Time {
	return p.stamp.CreatedAt()
}
