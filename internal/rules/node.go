// internal/rules/node.go
package rules

import (
	"fmt"
	"slices"
)

/*
 * Composite node.
 *
 * Node is a closed tagged variant: exactly one Kind per value, with the
 * payload fields relevant to that kind. Fields are unexported so a node
 * cannot be modified after construction; builders always allocate a new
 * node (and a new children slice) rather than extending an existing one.
 *
 * Kinds:
 *   - leaf: wraps one caller-supplied Rule
 *   - and/or/xor: two or more ordered children
 *   - not: exactly one child (children[0])
 *   - true/false: constants, no payload
 *
 * Sharing: a node may appear under any number of parents. Because nothing
 * mutates a node or its children slice, a shared subtree is read-only and
 * safe to evaluate from several goroutines at once, provided the leaf rules
 * themselves are.
 *
 * The zero Node has KindUnspecified. It is never produced by the builders,
 * evaluates to false and renders as "unspecified".
 */

// Kind identifies which variant a Node holds.
type Kind int

const (
	KindUnspecified Kind = iota
	KindLeaf
	KindAnd
	KindOr
	KindXor
	KindInvert
	KindTrue
	KindFalse
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindXor:
		return "xor"
	case KindInvert:
		return "not"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	default:
		return "unspecified"
	}
}

// variadic reports whether nodes of this kind hold a list of children that
// flattens when combined with another node of the same kind.
func (k Kind) variadic() bool {
	return k == KindAnd || k == KindOr || k == KindXor
}

// Node is an immutable rule tree. Node implements Rule, so a composite can
// be used anywhere a rule is expected, including as a child of another node.
type Node[T any] struct {
	kind     Kind
	rule     Rule[T]
	children []Node[T]
}

// Kind returns the variant of the node.
func (n Node[T]) Kind() Kind {
	return n.kind
}

// Rule returns the wrapped rule of a leaf node, or nil for every other kind.
func (n Node[T]) Rule() Rule[T] {
	if n.kind != KindLeaf {
		return nil
	}
	return n.rule
}

// Children returns a copy of the node's children. An inverted node has one
// child; leaves and constants have none.
func (n Node[T]) Children() []Node[T] {
	return slices.Clone(n.children)
}

// Len returns the number of direct children.
func (n Node[T]) Len() int {
	return len(n.children)
}

// True returns the constant node that every candidate satisfies.
func True[T any]() Node[T] {
	return Node[T]{kind: KindTrue}
}

// False returns the constant node that no candidate satisfies.
func False[T any]() Node[T] {
	return Node[T]{kind: KindFalse}
}

func leaf[T any](r Rule[T]) Node[T] {
	if r == nil {
		var zero T
		panic(fmt.Sprintf("rules: cannot wrap a nil rule over %T", zero))
	}
	return Node[T]{kind: KindLeaf, rule: r}
}

// combination builds a variadic node over a freshly allocated children slice.
func combination[T any](kind Kind, children ...Node[T]) Node[T] {
	return Node[T]{kind: kind, children: slices.Clone(children)}
}
