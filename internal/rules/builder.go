// internal/rules/builder.go
package rules

/*
 * Builder operations.
 *
 * Every operation is total and returns a new Node; inputs stay valid and
 * may be reused in other expressions.
 *
 * Flattening: combining a node with another of the same variadic kind
 * merges into one level instead of nesting. Only the receiver's kind is
 * consulted to decide whether to extend, and an argument of that same kind
 * contributes its children rather than itself:
 *
 *   And(a,b).And(c)           -> And(a,b,c)
 *   And(a,b).And(And(c,d))    -> And(a,b,c,d)
 *   And(a,b).And(Or(c,d))     -> And(a,b,Or(c,d))
 *   Wrap(a).And(And(b,c))     -> And(a,And(b,c))
 *
 * Flattening never crosses operator kinds and Invert never simplifies:
 * Not(Not(a)) keeps both levels so rendering and explanation show the
 * structure the caller wrote.
 */

// Wrap lifts a rule into a Node. A Node is returned unchanged; any other
// rule becomes a leaf. Wrapping lets one rule value be reused across several
// composite expressions.
func Wrap[T any](r Rule[T]) Node[T] {
	if n, ok := r.(Node[T]); ok {
		return n
	}
	return leaf(r)
}

// And returns a node satisfied when both n and other are satisfied.
func (n Node[T]) And(other Rule[T]) Node[T] {
	return n.merge(KindAnd, Wrap(other))
}

// Or returns a node satisfied when n or other is satisfied.
func (n Node[T]) Or(other Rule[T]) Node[T] {
	return n.merge(KindOr, Wrap(other))
}

// Xor returns a node satisfied when exactly one of its children is satisfied.
func (n Node[T]) Xor(other Rule[T]) Node[T] {
	return n.merge(KindXor, Wrap(other))
}

// Invert returns a node satisfied when n is not.
func (n Node[T]) Invert() Node[T] {
	return Node[T]{kind: KindInvert, children: []Node[T]{n}}
}

// merge implements the flattening rule for variadic kinds.
func (n Node[T]) merge(kind Kind, other Node[T]) Node[T] {
	if n.kind != kind {
		return combination(kind, n, other)
	}

	children := make([]Node[T], 0, len(n.children)+max(len(other.children), 1))
	children = append(children, n.children...)
	if other.kind == kind {
		children = append(children, other.children...)
	} else {
		children = append(children, other)
	}
	return Node[T]{kind: kind, children: children}
}

// And combines two rules or nodes with logical conjunction.
func And[T any](a, b Rule[T]) Node[T] {
	return Wrap(a).And(b)
}

// Or combines two rules or nodes with logical disjunction.
func Or[T any](a, b Rule[T]) Node[T] {
	return Wrap(a).Or(b)
}

// Xor combines two rules or nodes with exclusive disjunction.
func Xor[T any](a, b Rule[T]) Node[T] {
	return Wrap(a).Xor(b)
}

// Not inverts a rule or node.
func Not[T any](r Rule[T]) Node[T] {
	return Wrap(r).Invert()
}

// All folds rules into a conjunction. One rule is returned wrapped and an
// empty list yields True.
func All[T any](rs ...Rule[T]) Node[T] {
	return fold(KindAnd, True[T](), rs)
}

// Any folds rules into a disjunction. One rule is returned wrapped and an
// empty list yields False.
func Any[T any](rs ...Rule[T]) Node[T] {
	return fold(KindOr, False[T](), rs)
}

// OneOf folds rules into an exclusive disjunction. One rule is returned
// wrapped and an empty list yields False.
func OneOf[T any](rs ...Rule[T]) Node[T] {
	return fold(KindXor, False[T](), rs)
}

func fold[T any](kind Kind, empty Node[T], rs []Rule[T]) Node[T] {
	if len(rs) == 0 {
		return empty
	}
	acc := Wrap(rs[0])
	for _, r := range rs[1:] {
		acc = acc.merge(kind, Wrap(r))
	}
	return acc
}
