// internal/rules/rule.go
package rules

import "fmt"

/*
 * Atomic rule capability.
 *
 * A Rule answers one yes/no question about a candidate of type T. Concrete
 * rules are supplied by callers; the engine never inspects their internals
 * and only ever calls IsSatisfiedBy and, for rendering, String.
 *
 * Contract on implementations:
 *   - Deterministic: same candidate, same answer.
 *   - Side-effect free: the explainer re-evaluates rules while building a
 *     remainder, so an impure rule produces inconsistent explanations.
 *   - Safe for concurrent reads if the composed tree is shared across
 *     goroutines.
 *
 * Rendering: rules implementing fmt.Stringer render as their String()
 * output. Other rules fall back to their Go-syntax representation.
 */

// Rule is a single boolean test over a candidate.
type Rule[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a named function to the Rule interface.
type Func[T any] struct {
	name string
	fn   func(T) bool
}

// NewFunc returns a rule that delegates to fn and renders as name.
func NewFunc[T any](name string, fn func(T) bool) Func[T] {
	if fn == nil {
		panic(fmt.Sprintf("rules: nil function for rule %q", name))
	}
	return Func[T]{name: name, fn: fn}
}

// IsSatisfiedBy implements Rule.
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f.fn(candidate)
}

func (f Func[T]) String() string {
	return f.name
}

// describe returns the descriptive text of a caller-supplied rule.
func describe(r any) string {
	if s, ok := r.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%#v", r)
}
