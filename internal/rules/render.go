// internal/rules/render.go
package rules

import "strings"

/*
 * Textual rendering for diagnostics.
 *
 *   leaf         -> the rule's own description
 *   and/or/xor   -> "(c1 <op> c2 <op> ...)" with the connective word
 *   not          -> "not <child>"
 *   true/false   -> "true" / "false"
 *
 * Output is meant for humans and is never parsed back.
 */

// String renders the node as a parenthesized infix expression.
func (n Node[T]) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n Node[T]) render(b *strings.Builder) {
	switch {
	case n.kind == KindLeaf:
		b.WriteString(describe(n.rule))
	case n.kind.variadic():
		b.WriteByte('(')
		for i, child := range n.children {
			if i != 0 {
				b.WriteByte(' ')
				b.WriteString(n.kind.String())
				b.WriteByte(' ')
			}
			child.render(b)
		}
		b.WriteByte(')')
	case n.kind == KindInvert:
		b.WriteString("not ")
		n.children[0].render(b)
	default:
		b.WriteString(n.kind.String())
	}
}
