// internal/rules/builder_test.go
package rules

import (
	"testing"
)

func TestWrap_Leaf(t *testing.T) {
	gt5 := GreaterThan(5)
	node := Wrap[int](gt5)

	if node.Kind() != KindLeaf {
		t.Fatalf("Kind() = %v, want %v", node.Kind(), KindLeaf)
	}
	if node.Rule() != Rule[int](gt5) {
		t.Errorf("Rule() = %v, want %v", node.Rule(), gt5)
	}
	if node.Len() != 0 {
		t.Errorf("Len() = %v, want 0", node.Len())
	}
}

func TestWrap_NodeIsReturnedUnchanged(t *testing.T) {
	and := And[int](GreaterThan(5), LessThan(10))
	wrapped := Wrap[int](and)

	if wrapped.Kind() != KindAnd {
		t.Fatalf("Kind() = %v, want %v (no extra leaf level)", wrapped.Kind(), KindAnd)
	}
	if wrapped.Len() != 2 {
		t.Errorf("Len() = %v, want 2", wrapped.Len())
	}
}

func TestWrap_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Wrap(nil) did not panic")
		}
	}()
	Wrap[int](nil)
}

func TestBuilder_Flattening(t *testing.T) {
	a, b, c, d := GreaterThan(1), GreaterThan(2), GreaterThan(3), GreaterThan(4)

	tests := []struct {
		name     string
		node     Node[int]
		wantKind Kind
		wantLen  int
		want     string
	}{
		{
			name:     "binary and",
			node:     And[int](a, b),
			wantKind: KindAnd,
			wantLen:  2,
			want:     "(greater than 1 and greater than 2)",
		},
		{
			name:     "and extended with leaf",
			node:     And[int](a, b).And(c),
			wantKind: KindAnd,
			wantLen:  3,
			want:     "(greater than 1 and greater than 2 and greater than 3)",
		},
		{
			name:     "and extended with and",
			node:     And[int](a, b).And(And[int](c, d)),
			wantKind: KindAnd,
			wantLen:  4,
			want:     "(greater than 1 and greater than 2 and greater than 3 and greater than 4)",
		},
		{
			name:     "and with or does not cross kinds",
			node:     And[int](a, b).And(Or[int](c, d)),
			wantKind: KindAnd,
			wantLen:  3,
			want:     "(greater than 1 and greater than 2 and (greater than 3 or greater than 4))",
		},
		{
			name:     "leaf and with and nests on the argument side",
			node:     Wrap[int](a).And(And[int](b, c)),
			wantKind: KindAnd,
			wantLen:  2,
			want:     "(greater than 1 and (greater than 2 and greater than 3))",
		},
		{
			name:     "or extended with or",
			node:     Or[int](a, b).Or(Or[int](c, d)),
			wantKind: KindOr,
			wantLen:  4,
			want:     "(greater than 1 or greater than 2 or greater than 3 or greater than 4)",
		},
		{
			name:     "xor extended with leaf",
			node:     Xor[int](a, b).Xor(c),
			wantKind: KindXor,
			wantLen:  3,
			want:     "(greater than 1 xor greater than 2 xor greater than 3)",
		},
		{
			name:     "or over and keeps and nested",
			node:     And[int](a, b).Or(c),
			wantKind: KindOr,
			wantLen:  2,
			want:     "((greater than 1 and greater than 2) or greater than 3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.node.Kind(), tt.wantKind)
			}
			if tt.node.Len() != tt.wantLen {
				t.Errorf("Len() = %v, want %v", tt.node.Len(), tt.wantLen)
			}
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_InputsStayReusable(t *testing.T) {
	base := And[int](GreaterThan(0), LessThan(100)).And(AtMost(50))

	// Two extensions of the same base must not share a children backing array.
	withEven := base.And(NewFunc("even", func(x int) bool { return x%2 == 0 }))
	withTen := base.And(EqualTo(10))

	if base.Len() != 3 {
		t.Fatalf("base Len() = %v, want 3 (unchanged)", base.Len())
	}
	if got, want := withEven.String(), "(greater than 0 and less than 100 and at most 50 and even)"; got != want {
		t.Errorf("withEven = %q, want %q", got, want)
	}
	if got, want := withTen.String(), "(greater than 0 and less than 100 and at most 50 and equal to 10)"; got != want {
		t.Errorf("withTen = %q, want %q", got, want)
	}
	if !withEven.IsSatisfiedBy(4) || withTen.IsSatisfiedBy(4) {
		t.Errorf("extensions evaluate incorrectly at 4")
	}
}

func TestBuilder_ChildrenReturnsCopy(t *testing.T) {
	node := And[int](GreaterThan(5), LessThan(10))

	children := node.Children()
	children[0] = False[int]()

	if !node.IsSatisfiedBy(6) {
		t.Errorf("mutating Children() result changed the node")
	}
}

func TestBuilder_InvertIsNotSimplified(t *testing.T) {
	node := Not[int](GreaterThan(5)).Invert()

	if node.Kind() != KindInvert {
		t.Fatalf("Kind() = %v, want %v", node.Kind(), KindInvert)
	}
	inner := node.Children()
	if len(inner) != 1 || inner[0].Kind() != KindInvert {
		t.Fatalf("inner node is not an inversion: %v", node)
	}
	if got, want := node.String(), "not not greater than 5"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_SharedLeaf(t *testing.T) {
	rust := Wrap[int](EqualTo(7))
	premium := rust.And(LessThan(10))
	standard := rust.Invert().And(LessThan(5))
	either := premium.Or(standard)

	tests := []struct {
		candidate int
		want      bool
	}{
		{7, true},
		{3, true},
		{6, false},
	}
	for _, tt := range tests {
		if got := either.IsSatisfiedBy(tt.candidate); got != tt.want {
			t.Errorf("IsSatisfiedBy(%d) = %v, want %v", tt.candidate, got, tt.want)
		}
	}
}

func TestBuilder_Folds(t *testing.T) {
	tests := []struct {
		name string
		node Node[int]
		want string
	}{
		{"all empty", All[int](), "true"},
		{"any empty", Any[int](), "false"},
		{"one of empty", OneOf[int](), "false"},
		{"all single", All[int](GreaterThan(1)), "greater than 1"},
		{"all many", All[int](GreaterThan(1), LessThan(9), EqualTo(4)), "(greater than 1 and less than 9 and equal to 4)"},
		{"any many", Any[int](EqualTo(1), EqualTo(2), EqualTo(3)), "(equal to 1 or equal to 2 or equal to 3)"},
		{"one of many", OneOf[int](EqualTo(1), AtLeast(1)), "(equal to 1 xor at least 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnspecified, "unspecified"},
		{KindLeaf, "leaf"},
		{KindAnd, "and"},
		{KindOr, "or"},
		{KindXor, "xor"},
		{KindInvert, "not"},
		{KindTrue, "true"},
		{KindFalse, "false"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
