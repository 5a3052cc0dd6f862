package rewrite

import (
	"fmt"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
	"github.com/confkit-io/confkit/pkg/config"
	"github.com/confkit-io/confkit/pkg/types"
)

// UpsertPlugin ensures arr contains a constructor call for dottedName and
// that its options reflect opts.
//
// An existing call with no arguments gains a single object argument built
// from opts. An existing call with an object argument gets a shallow merge
// at the argument's top level: matching keys have their value node
// replaced, new keys are appended. Nested option objects are not recursed
// into. When no call matches, a new `new <dottedName>(...)` element is
// appended, with an options object argument when opts is non-nil.
//
// arr is always mutated in place. When several calls match the dotted
// name, all of them are updated.
func UpsertPlugin(arr *ast.ArrayLiteral, dottedName string, opts *config.Object) (Applied, error) {
	var applied Applied
	if arr == nil {
		return applied, types.ErrNotArray
	}

	calls := jsast.PluginCalls(arr, dottedName)
	if len(calls) == 0 {
		call, err := newPluginCall(dottedName, opts)
		if err != nil {
			return applied, err
		}
		jsast.AppendElement(arr, call)
		applied.PluginsAdded++
		return applied, nil
	}

	if opts == nil {
		return applied, nil
	}
	for _, call := range calls {
		sub, err := mergePluginOptions(call, opts)
		applied.merge(sub)
		if err != nil {
			return applied, fmt.Errorf("plugin %s: %w", dottedName, err)
		}
		applied.PluginsUpdated++
	}
	return applied, nil
}

func newPluginCall(dottedName string, opts *config.Object) (*ast.NewExpression, error) {
	if opts == nil {
		return jsast.NewCall(dottedName)
	}
	arg := jsast.Object()
	if _, err := MergeObject(arg, opts); err != nil {
		return nil, fmt.Errorf("plugin %s: %w", dottedName, err)
	}
	return jsast.NewCall(dottedName, arg)
}

// mergePluginOptions shallow-merges opts into the call's first argument.
func mergePluginOptions(call *ast.NewExpression, opts *config.Object) (Applied, error) {
	var applied Applied

	if len(call.ArgumentList) == 0 {
		arg := jsast.Object()
		sub, err := MergeObject(arg, opts)
		applied.merge(sub)
		if err != nil {
			return applied, err
		}
		call.ArgumentList = append(call.ArgumentList, ast.Expression{Expr: arg})
		return applied, nil
	}

	arg, ok := call.ArgumentList[0].Expr.(*ast.ObjectLiteral)
	if !ok {
		return applied, types.Wrap(types.ErrNotObject, "options argument", nil)
	}
	for _, key := range opts.Keys() {
		v, _ := opts.Get(key)
		expr, err := valueExpr(v)
		if err != nil {
			return applied, fmt.Errorf("option %q: %w", key, err)
		}
		existing := jsast.PropertiesByName(arg, key)
		if len(existing) == 0 {
			jsast.AppendProperty(arg, key, expr)
			applied.PropertiesAdded++
			continue
		}
		for _, prop := range existing {
			prop.Value = &ast.Expression{Expr: expr}
			applied.PropertiesReplaced++
		}
	}
	return applied, nil
}
