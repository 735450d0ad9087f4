// internal/rules/evaluate.go
package rules

/*
 * Rule evaluation.
 *
 * Evaluates a Node against a candidate by structural recursion:
 *
 *   leaf    -> the wrapped rule's answer
 *   and     -> every child satisfied (short-circuits on first failure)
 *   or      -> at least one child satisfied (short-circuits on first success)
 *   xor     -> exactly one child satisfied (stops at the second success)
 *   not     -> negation of the single child
 *   true    -> true
 *   false   -> false
 *
 * Xor is "exactly one", not parity: three satisfied children make a false
 * xor. Short-circuiting is not observable because rules are pure.
 *
 * Evaluation holds no state between calls. A node may be evaluated any
 * number of times, concurrently, against any number of candidates.
 */

// IsSatisfiedBy reports whether the candidate satisfies the node.
func (n Node[T]) IsSatisfiedBy(candidate T) bool {
	switch n.kind {
	case KindLeaf:
		return n.rule.IsSatisfiedBy(candidate)
	case KindAnd:
		for _, child := range n.children {
			if !child.IsSatisfiedBy(candidate) {
				return false
			}
		}
		return true
	case KindOr:
		for _, child := range n.children {
			if child.IsSatisfiedBy(candidate) {
				return true
			}
		}
		return false
	case KindXor:
		return countSatisfied(n.children, candidate, 2) == 1
	case KindInvert:
		return !n.children[0].IsSatisfiedBy(candidate)
	case KindTrue:
		return true
	default:
		return false
	}
}

// countSatisfied counts satisfied children, stopping once limit is reached.
func countSatisfied[T any](children []Node[T], candidate T, limit int) int {
	count := 0
	for _, child := range children {
		if child.IsSatisfiedBy(candidate) {
			count++
			if count >= limit {
				break
			}
		}
	}
	return count
}

// Evaluate reports whether candidate satisfies r.
func Evaluate[T any](r Rule[T], candidate T) bool {
	return r.IsSatisfiedBy(candidate)
}

// Result is the outcome of checking a candidate against a rule, with the
// remainder that explains a failure.
type Result[T any] struct {
	Satisfied    bool
	Remainder    Node[T]
	HasRemainder bool
}

// Check evaluates r against candidate and, on failure, computes the
// remainder responsible for it.
func Check[T any](r Rule[T], candidate T) Result[T] {
	node := Wrap(r)
	if node.IsSatisfiedBy(candidate) {
		return Result[T]{Satisfied: true}
	}
	remainder, ok := node.RemainderUnsatisfiedBy(candidate)
	return Result[T]{
		Remainder:    remainder,
		HasRemainder: ok,
	}
}

// Explain renders the remainder, or returns "" when there is none.
func (r Result[T]) Explain() string {
	if !r.HasRemainder {
		return ""
	}
	return r.Remainder.String()
}
