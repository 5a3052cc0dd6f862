package jsast

import (
	"strconv"

	"github.com/t14raptor/go-fast/ast"
)

// Ident builds a bare identifier reference.
func Ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

// String builds a quoted string literal.
func String(s string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: s}
}

// Number builds a numeric literal.
func Number(n float64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: n}
}

// Bool builds a boolean literal.
func Bool(b bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{Value: b}
}

// Null builds a null literal.
func Null() *ast.NullLiteral {
	return &ast.NullLiteral{}
}

// Regexp builds a regular-expression literal, e.g. /\.css$/i.
func Regexp(pattern, flags string) *ast.RegExpLiteral {
	return &ast.RegExpLiteral{Literal: "/" + pattern + "/" + flags, Pattern: pattern, Flags: flags}
}

// CoercedLiteral maps a scalar string onto the literal the generated code
// should carry: "true"/"false" become boolean literals, a string that fully
// parses as a number becomes a numeric literal, anything else stays a
// quoted string.
func CoercedLiteral(s string) ast.Expr {
	switch s {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(n)
	}
	return String(s)
}

// Property builds a non-computed key: value property. Keys are stored as
// string literals, matching what the toolkit's parser produces for plain
// identifier keys.
func Property(key string, value ast.Expr) ast.Property {
	return ast.Property{Prop: &ast.PropertyKeyed{
		Key:   &ast.Expression{Expr: String(key)},
		Kind:  ast.PropertyKindValue,
		Value: &ast.Expression{Expr: value},
	}}
}

// Object builds an object literal from properties, preserving order.
func Object(props ...ast.Property) *ast.ObjectLiteral {
	if props == nil {
		props = []ast.Property{}
	}
	return &ast.ObjectLiteral{Value: props}
}

// Array builds an array literal from element expressions, preserving order.
func Array(elems ...ast.Expr) *ast.ArrayLiteral {
	value := make([]ast.Expression, 0, len(elems))
	for _, e := range elems {
		value = append(value, ast.Expression{Expr: e})
	}
	return &ast.ArrayLiteral{Value: value}
}

// AppendProperty appends a key: value property to an object literal.
func AppendProperty(obj *ast.ObjectLiteral, key string, value ast.Expr) {
	obj.Value = append(obj.Value, Property(key, value))
}

// AppendElement appends an element to an array literal.
func AppendElement(arr *ast.ArrayLiteral, elem ast.Expr) {
	arr.Value = append(arr.Value, ast.Expression{Expr: elem})
}

// NewCall builds a constructor call whose callee is the dotted name
// expanded into nested member access, e.g. "webpack.optimize.DedupePlugin"
// becomes new webpack.optimize.DedupePlugin(...). The member chain is
// produced by the toolkit's own parser rather than assembled by hand.
func NewCall(dottedName string, args ...ast.Expr) (*ast.NewExpression, error) {
	expr, err := ParseExpr("new " + dottedName + "()")
	if err != nil {
		return nil, err
	}
	call, ok := expr.(*ast.NewExpression)
	if !ok {
		return nil, badFragment(dottedName)
	}
	for _, a := range args {
		call.ArgumentList = append(call.ArgumentList, ast.Expression{Expr: a})
	}
	return call, nil
}
