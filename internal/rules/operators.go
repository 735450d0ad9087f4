// internal/rules/operators.go
package rules

import (
	"cmp"
	"fmt"
)

/*
 * Comparison operators and ready-made atomic rules.
 *
 * Implements six ordered comparison operators and a Comparison rule that
 * tests a candidate against a fixed target. Field projects one value out of
 * a larger candidate so comparisons can be reused over records.
 *
 * Operators:
 *   - eq/neq: equality
 *   - lt/lte/gt/gte: ordering via cmp.Compare (NaN sorts before all numbers)
 *
 * Rendering uses English phrases ("greater than 5", "at most 90000") so a
 * rendered tree reads as a sentence.
 */

// Operator selects a comparison between a candidate value and a target.
type Operator int

const (
	OpUnspecified Operator = iota
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
)

func (op Operator) String() string {
	switch op {
	case OpEq:
		return "equal to"
	case OpNeq:
		return "not equal to"
	case OpLt:
		return "less than"
	case OpLte:
		return "at most"
	case OpGt:
		return "greater than"
	case OpGte:
		return "at least"
	default:
		return "unspecified"
	}
}

// Compare applies op to value and target. Unspecified operators never match.
func Compare[V cmp.Ordered](op Operator, value, target V) bool {
	c := cmp.Compare(value, target)
	switch op {
	case OpEq:
		return c == 0
	case OpNeq:
		return c != 0
	case OpLt:
		return c < 0
	case OpLte:
		return c <= 0
	case OpGt:
		return c > 0
	case OpGte:
		return c >= 0
	default:
		return false
	}
}

// Comparison is an atomic rule comparing the candidate against a target.
type Comparison[V cmp.Ordered] struct {
	Operator Operator
	Target   V
}

// NewComparison returns a rule satisfied when Compare(op, candidate, target).
func NewComparison[V cmp.Ordered](op Operator, target V) Comparison[V] {
	return Comparison[V]{Operator: op, Target: target}
}

// GreaterThan returns a rule satisfied by candidates strictly above target.
func GreaterThan[V cmp.Ordered](target V) Comparison[V] {
	return NewComparison(OpGt, target)
}

// LessThan returns a rule satisfied by candidates strictly below target.
func LessThan[V cmp.Ordered](target V) Comparison[V] {
	return NewComparison(OpLt, target)
}

// AtLeast returns a rule satisfied by candidates at or above target.
func AtLeast[V cmp.Ordered](target V) Comparison[V] {
	return NewComparison(OpGte, target)
}

// AtMost returns a rule satisfied by candidates at or below target.
func AtMost[V cmp.Ordered](target V) Comparison[V] {
	return NewComparison(OpLte, target)
}

// EqualTo returns a rule satisfied by candidates equal to target.
func EqualTo[V cmp.Ordered](target V) Comparison[V] {
	return NewComparison(OpEq, target)
}

// IsSatisfiedBy implements Rule.
func (c Comparison[V]) IsSatisfiedBy(candidate V) bool {
	return Compare(c.Operator, candidate, c.Target)
}

func (c Comparison[V]) String() string {
	return fmt.Sprintf("%s %v", c.Operator, c.Target)
}

// FieldRule applies a rule to one value projected out of the candidate.
type FieldRule[T, V any] struct {
	name string
	get  func(T) V
	rule Rule[V]
}

// Field returns a rule over T that extracts a value with get and tests it
// with r. It renders as "<name> <r>", e.g. "desired salary at most 90000".
func Field[T, V any](name string, get func(T) V, r Rule[V]) FieldRule[T, V] {
	if get == nil || r == nil {
		panic(fmt.Sprintf("rules: field %q needs an accessor and a rule", name))
	}
	return FieldRule[T, V]{name: name, get: get, rule: r}
}

// IsSatisfiedBy implements Rule.
func (f FieldRule[T, V]) IsSatisfiedBy(candidate T) bool {
	return f.rule.IsSatisfiedBy(f.get(candidate))
}

func (f FieldRule[T, V]) String() string {
	return f.name + " " + describe(f.rule)
}
