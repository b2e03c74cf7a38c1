package reverse

import (
	"strconv"
	"strings"
	"testing"
)

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func TestFinalize_TerminalOnlyBehavesAsTerminal(t *testing.T) {
	t.Parallel()

	fn := Start(strings.ToUpper).Finalize()

	if got := fn("abc"); got != "ABC" {
		t.Fatalf("expected ABC, got %q", got)
	}
}

func TestBefore_MostRecentlyAddedRunsFirst(t *testing.T) {
	t.Parallel()

	// terminal: *5, added before it: parse; so fn("8") = 5 * parse("8")
	fn := Before(
		Start(func(n int) int { return n * 5 }),
		parseInt,
	).Finalize()

	if got := fn("8"); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestBefore_ExecutionOrderAcrossThreeStages(t *testing.T) {
	t.Parallel()

	var order []string
	p := Start(func(n int) int {
		order = append(order, "terminal")
		return n + 1
	})
	p = p.Map(func(n int) int {
		order = append(order, "middle")
		return n * 10
	})
	fn := Before(p, func(s string) int {
		order = append(order, "first")
		return parseInt(s)
	}).Finalize()

	if got := fn("4"); got != 41 {
		t.Fatalf("expected (4*10)+1 = 41, got %d", got)
	}
	if len(order) != 3 || order[0] != "first" || order[1] != "middle" || order[2] != "terminal" {
		t.Fatalf("expected first,middle,terminal, got %v", order)
	}
}

func TestBefore_ForkSafety(t *testing.T) {
	t.Parallel()

	base := Start(func(n int) int { return n * 5 })

	fromString := Before(base, parseInt)
	fromLength := Before(base, func(s string) int { return len(s) })

	if got := fromString.Finalize()("8"); got != 40 {
		t.Fatalf("expected 40 from parse branch, got %d", got)
	}
	if got := fromLength.Finalize()("eight"); got != 25 {
		t.Fatalf("expected 25 from length branch, got %d", got)
	}
	if got := base.Finalize()(3); got != 15 {
		t.Fatalf("expected ancestor to stay unchanged, got %d", got)
	}
	if fromString.Id() == fromLength.Id() {
		t.Fatalf("expected descendants to be distinct objects, got id %s twice", fromString.Id())
	}
}

func TestBefore2_TwoArgumentFirstStage(t *testing.T) {
	t.Parallel()

	fn := Before2(
		Before(
			Start(strconv.Itoa),
			func(n int) int { return n * 2 },
		),
		func(a, b int) int { return a + b },
	).Finalize()

	if got := fn(20, 1); got != "42" {
		t.Fatalf("expected \"42\", got %q", got)
	}
}

func TestBefore3_ThreeArgumentFirstStage(t *testing.T) {
	t.Parallel()

	fn := Before3(
		Start(strings.ToUpper),
		func(a, b, c string) string { return a + b + c },
	).Finalize()

	if got := fn("a", "b", "c"); got != "ABC" {
		t.Fatalf("expected ABC, got %q", got)
	}
}

func TestBefore0_ZeroArgumentFirstStage(t *testing.T) {
	t.Parallel()

	fn := Before0(
		Start(func(n int) int { return n * 7 }),
		func() int { return 6 },
	).Finalize()

	if got := fn(); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestFinalize_UnaffectedByLaterBefore(t *testing.T) {
	t.Parallel()

	base := Start(func(n int) int { return n + 1 })
	plain := base.Finalize()

	_ = base.Map(func(n int) int { return n * 100 })

	if got := plain(1); got != 2 {
		t.Fatalf("expected earlier finalization to stay at 2, got %d", got)
	}
}

func TestFinalize_PanicPropagatesAndSkipsLaterStages(t *testing.T) {
	t.Parallel()

	executed := 0
	fn := Before(
		Start(func(n int) int {
			executed++
			return n
		}),
		func(s string) int { panic("stage failed") },
	).Finalize()

	defer func() {
		if r := recover(); r != "stage failed" {
			t.Fatalf("expected stage panic, got %v", r)
		}
		if executed != 0 {
			t.Fatalf("expected terminal stage to be skipped, got %d executions", executed)
		}
	}()

	fn("1")
}
