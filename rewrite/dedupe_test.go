package rewrite

import (
	"testing"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
)

func TestDedupeExprsFirstOccurrenceWins(t *testing.T) {
	elems := []ast.Expr{
		jsast.String("a"),
		jsast.String("b"),
		jsast.String("a"),
		jsast.Number(1),
		jsast.String("b"),
		jsast.Number(1),
	}
	out := DedupeExprs(elems)
	if len(out) != 3 {
		t.Fatalf("len = %d; want 3", len(out))
	}
	if s := out[0].(*ast.StringLiteral); s.Value != "a" {
		t.Errorf("out[0] = %q; want a", s.Value)
	}
	if s := out[1].(*ast.StringLiteral); s.Value != "b" {
		t.Errorf("out[1] = %q; want b", s.Value)
	}
	if n := out[2].(*ast.NumberLiteral); n.Value != 1 {
		t.Errorf("out[2] = %v; want 1", n.Value)
	}
}

func TestDedupeExprsByValueNotIdentity(t *testing.T) {
	// Distinct nodes spelling the same value collapse.
	out := DedupeExprs([]ast.Expr{jsast.String("x"), jsast.String("x")})
	if len(out) != 1 {
		t.Fatalf("len = %d; want 1", len(out))
	}
}

func TestDedupeExprsKeepsDistinctKinds(t *testing.T) {
	// The number 1 and the string "1" render differently and both survive.
	out := DedupeExprs([]ast.Expr{jsast.Number(1), jsast.String("1")})
	if len(out) != 2 {
		t.Fatalf("len = %d; want 2", len(out))
	}
}

func TestDedupeExprsSkipsNil(t *testing.T) {
	out := DedupeExprs([]ast.Expr{nil, jsast.String("a"), nil})
	if len(out) != 1 {
		t.Fatalf("len = %d; want 1", len(out))
	}
}
