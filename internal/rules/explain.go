// internal/rules/explain.go
package rules

/*
 * Failure explanation.
 *
 * RemainderUnsatisfiedBy returns the smallest sub-tree responsible for a
 * candidate failing a node. The remainder is built from the caller's
 * (shared) nodes, so leaves in it are the same rule values the caller wrote.
 *
 * Algorithm, applied only to nodes the candidate does not satisfy:
 *   - leaf: the leaf itself
 *   - and/or: for each unsatisfied child, that child's own remainder;
 *     one remainder is returned unwrapped, several are regrouped under a
 *     new node of the parent's kind
 *   - xor with two or more satisfied children: an xor of exactly those
 *     children, since their co-occurrence is the failure
 *   - xor with no satisfied child: same collection as and/or
 *   - not: the inverted node itself, meaning "this rule holds but must not"
 *   - true/false: no remainder
 *
 * Guarantees:
 *   - A satisfied node never has a remainder, at any depth.
 *   - Any returned remainder is itself unsatisfied by the same candidate.
 *   - An unsatisfied node has a remainder unless its failure comes only
 *     from a false constant.
 */

// RemainderUnsatisfiedBy returns the part of n that candidate fails.
// The boolean is false when candidate satisfies n, or when the failure is
// due only to a false constant.
func (n Node[T]) RemainderUnsatisfiedBy(candidate T) (Node[T], bool) {
	if n.IsSatisfiedBy(candidate) {
		return Node[T]{}, false
	}
	return n.remainder(candidate)
}

// remainder assumes candidate does not satisfy n.
func (n Node[T]) remainder(candidate T) (Node[T], bool) {
	switch n.kind {
	case KindLeaf, KindInvert:
		return n, true
	case KindAnd, KindOr:
		return collectRemainders(n.kind, n.children, candidate)
	case KindXor:
		satisfied := satisfiedChildren(n.children, candidate)
		if len(satisfied) > 1 {
			return Node[T]{kind: KindXor, children: satisfied}, true
		}
		return collectRemainders(n.kind, n.children, candidate)
	default:
		return Node[T]{}, false
	}
}

// collectRemainders gathers the remainders of unsatisfied children.
func collectRemainders[T any](kind Kind, children []Node[T], candidate T) (Node[T], bool) {
	var unsatisfied []Node[T]
	for _, child := range children {
		if child.IsSatisfiedBy(candidate) {
			continue
		}
		if r, ok := child.remainder(candidate); ok {
			unsatisfied = append(unsatisfied, r)
		}
	}

	switch len(unsatisfied) {
	case 0:
		return Node[T]{}, false
	case 1:
		return unsatisfied[0], true
	default:
		return Node[T]{kind: kind, children: unsatisfied}, true
	}
}

func satisfiedChildren[T any](children []Node[T], candidate T) []Node[T] {
	var satisfied []Node[T]
	for _, child := range children {
		if child.IsSatisfiedBy(candidate) {
			satisfied = append(satisfied, child)
		}
	}
	return satisfied
}
