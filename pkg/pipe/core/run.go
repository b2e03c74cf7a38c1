package core

import "github.com/ib-77/pipe3/pkg/pipe"

// Run threads v through the stages first to last and returns the final
// value. Empty stages return v unchanged.
func Run(stages pipe.Stages, v any) any {
	for _, step := range stages {
		v = step(v)
	}
	return v
}

// RunBack threads v through the stages from the most recently appended one
// back to index 0. Reverse pipelines keep their terminal stage at index 0
// and record earlier-running stages by appending, so execution walks the
// list backwards.
func RunBack(stages pipe.Stages, v any) any {
	for i := len(stages) - 1; i >= 0; i-- {
		v = stages[i](v)
	}
	return v
}
