package pipe

// Step is a single erased transformation stage: it receives the current
// value and returns the next one.
type Step func(v any) any

// Stages is a persistent, append-only sequence of steps. Append always
// allocates, so any number of descendant builders can grow from the same
// point without sharing mutable state.
type Stages []Step

func (s Stages) Append(step Step) Stages {
	next := make(Stages, len(s), len(s)+1)
	copy(next, s)
	return append(next, step)
}

func (s Stages) Len() int {
	return len(s)
}

// As recovers the typed value behind an erased step result. The generic
// signatures of Then/Before guarantee the dynamic type matches; a nil
// interface unwraps to the zero value of T.
func As[T any](v any) T {
	t, _ := v.(T)
	return t
}
