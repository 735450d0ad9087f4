// internal/rules/evaluate_test.go
package rules

import (
	"sync"
	"testing"
)

func TestEvaluate_SimpleRule(t *testing.T) {
	gt5 := GreaterThan(5)

	if !Evaluate[int](gt5, 6) {
		t.Errorf("Evaluate(greater than 5, 6) = false, want true")
	}
	if Evaluate[int](gt5, 3) {
		t.Errorf("Evaluate(greater than 5, 3) = true, want false")
	}
}

func TestEvaluate_And(t *testing.T) {
	rule := And[int](GreaterThan(5), LessThan(10))

	tests := []struct {
		candidate int
		want      bool
	}{
		{6, true},
		{3, false},
		{33, false},
	}
	for _, tt := range tests {
		if got := rule.IsSatisfiedBy(tt.candidate); got != tt.want {
			t.Errorf("IsSatisfiedBy(%d) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestEvaluate_AndOr(t *testing.T) {
	rule := And[int](GreaterThan(5), LessThan(10)).Or(EqualTo(0))

	tests := []struct {
		candidate int
		want      bool
	}{
		{6, true},
		{3, false},
		{33, false},
		{0, true},
	}
	for _, tt := range tests {
		if got := rule.IsSatisfiedBy(tt.candidate); got != tt.want {
			t.Errorf("IsSatisfiedBy(%d) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestEvaluate_XorIsExactlyOne(t *testing.T) {
	// Three overlapping ranges; parity and exactly-one disagree at 7.
	rule := Xor[int](GreaterThan(5), LessThan(10)).Xor(EqualTo(7))

	tests := []struct {
		name      string
		candidate int
		want      bool
	}{
		{"only less than 10", 2, true},
		{"only greater than 5", 20, true},
		{"two satisfied", 6, false},
		{"three satisfied", 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rule.IsSatisfiedBy(tt.candidate); got != tt.want {
				t.Errorf("IsSatisfiedBy(%d) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestEvaluate_XorNoneSatisfied(t *testing.T) {
	rule := Xor[int](EqualTo(1), EqualTo(2))

	if rule.IsSatisfiedBy(3) {
		t.Errorf("IsSatisfiedBy(3) = true, want false (no child satisfied)")
	}
}

func TestEvaluate_Invert(t *testing.T) {
	rule := Not[int](GreaterThan(5))

	if rule.IsSatisfiedBy(6) {
		t.Errorf("IsSatisfiedBy(6) = true, want false")
	}
	if !rule.IsSatisfiedBy(3) {
		t.Errorf("IsSatisfiedBy(3) = false, want true")
	}
	if !rule.Invert().IsSatisfiedBy(6) {
		t.Errorf("double inversion IsSatisfiedBy(6) = false, want true")
	}
}

func TestEvaluate_Constants(t *testing.T) {
	tests := []struct {
		name string
		node Node[int]
		want bool
	}{
		{"true", True[int](), true},
		{"false", False[int](), false},
		{"zero node", Node[int]{}, false},
		{"and with true is identity", And[int](True[int](), GreaterThan(5)), true},
		{"and with false absorbs", And[int](False[int](), GreaterThan(5)), false},
		{"or with true absorbs", Or[int](True[int](), LessThan(0)), true},
		{"or with false is identity", Or[int](False[int](), GreaterThan(5)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsSatisfiedBy(6); got != tt.want {
				t.Errorf("IsSatisfiedBy(6) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_NodeAsChildRule(t *testing.T) {
	inner := And[int](GreaterThan(5), LessThan(10))
	outer := NewFunc("in range", inner.IsSatisfiedBy)

	if !Wrap[int](outer).And(AtMost(7)).IsSatisfiedBy(6) {
		t.Errorf("composite used through a function rule evaluated false at 6")
	}
}

func TestEvaluate_RepeatedEvaluationIsStateless(t *testing.T) {
	rule := And[int](GreaterThan(5), LessThan(10)).Or(EqualTo(0))

	for i := 0; i < 3; i++ {
		if !rule.IsSatisfiedBy(6) || rule.IsSatisfiedBy(3) {
			t.Fatalf("iteration %d: evaluation changed between calls", i)
		}
	}
}

func TestEvaluate_ConcurrentReaders(t *testing.T) {
	rule := And[int](GreaterThan(5), LessThan(10)).Or(EqualTo(0))

	var wg sync.WaitGroup
	errs := make(chan int, 64)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := -5; x < 40; x++ {
				want := (x > 5 && x < 10) || x == 0
				if rule.IsSatisfiedBy(x) != want {
					errs <- x
					return
				}
				if _, ok := rule.RemainderUnsatisfiedBy(x); ok == want {
					errs <- x
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for x := range errs {
		t.Errorf("concurrent evaluation disagreed at %d", x)
	}
}

func TestCheck_Satisfied(t *testing.T) {
	result := Check[int](And[int](GreaterThan(5), LessThan(10)), 6)

	if !result.Satisfied {
		t.Errorf("Satisfied = false, want true")
	}
	if result.HasRemainder {
		t.Errorf("HasRemainder = true, want false")
	}
	if result.Explain() != "" {
		t.Errorf("Explain() = %q, want empty", result.Explain())
	}
}

func TestCheck_Unsatisfied(t *testing.T) {
	result := Check[int](And[int](GreaterThan(5), LessThan(10)), 3)

	if result.Satisfied {
		t.Errorf("Satisfied = true, want false")
	}
	if !result.HasRemainder {
		t.Fatalf("HasRemainder = false, want true")
	}
	if got, want := result.Explain(), "greater than 5"; got != want {
		t.Errorf("Explain() = %q, want %q", got, want)
	}
}

func TestCheck_BareRule(t *testing.T) {
	result := Check[int](LessThan(10), 33)

	if result.Satisfied {
		t.Errorf("Satisfied = true, want false")
	}
	if result.Remainder.Kind() != KindLeaf {
		t.Errorf("Remainder.Kind() = %v, want %v", result.Remainder.Kind(), KindLeaf)
	}
}
