package jsast

import (
	"strconv"

	"github.com/t14raptor/go-fast/ast"
)

// PropertyKeyName returns the property's key as a plain string. Keys parsed
// from plain identifiers or quoted strings both surface as string literals;
// numeric keys are formatted the way the source would spell them.
func PropertyKeyName(p *ast.PropertyKeyed) string {
	switch key := p.Key.Expr.(type) {
	case *ast.StringLiteral:
		return key.Value
	case *ast.Identifier:
		return key.Name
	case *ast.NumberLiteral:
		return strconv.FormatFloat(key.Value, 'f', -1, 64)
	default:
		return ""
	}
}

// PropertyByName returns the first key: value property of obj whose key
// equals name, or nil when absent. Absence is not an error; it is the
// signal to create instead of update.
func PropertyByName(obj *ast.ObjectLiteral, name string) *ast.PropertyKeyed {
	for _, prop := range obj.Value {
		if kv, ok := prop.Prop.(*ast.PropertyKeyed); ok && PropertyKeyName(kv) == name {
			return kv
		}
	}
	return nil
}

// PropertyIndex returns the element index of the first property of obj
// whose key equals name, or -1 when absent.
func PropertyIndex(obj *ast.ObjectLiteral, name string) int {
	for i, prop := range obj.Value {
		if kv, ok := prop.Prop.(*ast.PropertyKeyed); ok && PropertyKeyName(kv) == name {
			return i
		}
	}
	return -1
}

// PropertiesByName returns every property of obj whose key equals name.
// Callers that allow duplicate keys visit all of them.
func PropertiesByName(obj *ast.ObjectLiteral, name string) []*ast.PropertyKeyed {
	var out []*ast.PropertyKeyed
	for _, prop := range obj.Value {
		if kv, ok := prop.Prop.(*ast.PropertyKeyed); ok && PropertyKeyName(kv) == name {
			out = append(out, kv)
		}
	}
	return out
}

// ObjectValue unwraps a property value into an object literal, or nil when
// the value is some other node kind.
func ObjectValue(p *ast.PropertyKeyed) *ast.ObjectLiteral {
	obj, _ := p.Value.Expr.(*ast.ObjectLiteral)
	return obj
}

// ArrayValue unwraps a property value into an array literal, or nil.
func ArrayValue(p *ast.PropertyKeyed) *ast.ArrayLiteral {
	arr, _ := p.Value.Expr.(*ast.ArrayLiteral)
	return arr
}

// CalleeName renders a constructor call's callee back to its dotted source
// form, e.g. webpack.optimize.DedupePlugin. Identity for plugin merges is
// this rendered name, not node reference.
func CalleeName(call *ast.NewExpression) string {
	if call.Callee.Expr == nil {
		return ""
	}
	return ExprSource(call.Callee.Expr)
}

// PluginCalls returns every new-expression element of arr whose callee
// renders to dottedName. More than one match is possible when the caller
// has not kept plugin names unique; all matches are returned.
func PluginCalls(arr *ast.ArrayLiteral, dottedName string) []*ast.NewExpression {
	var out []*ast.NewExpression
	for _, el := range arr.Value {
		if call, ok := el.Expr.(*ast.NewExpression); ok && CalleeName(call) == dottedName {
			out = append(out, call)
		}
	}
	return out
}
