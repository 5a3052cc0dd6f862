package rewrite

import (
	"fmt"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
	"github.com/confkit-io/confkit/pkg/config"
	"github.com/confkit-io/confkit/pkg/types"
)

// valueExpr translates one description value into the expression node the
// generated code should carry.
func valueExpr(v config.Value) (ast.Expr, error) {
	switch v.Kind {
	case config.KindScalar:
		return jsast.CoercedLiteral(v.Str), nil
	case config.KindIdent:
		// Coercion wins over the identifier request: "true" stays a
		// boolean even when the caller asked for a bare symbol.
		return identOrLiteral(v.Str), nil
	case config.KindBool:
		return jsast.Bool(v.Bool), nil
	case config.KindNumber:
		return jsast.Number(v.Num), nil
	case config.KindNull:
		return jsast.Null(), nil
	case config.KindPattern:
		return jsast.Regexp(v.Pattern, v.Flags), nil
	case config.KindFragment:
		if v.Frag == nil {
			return nil, types.Wrap(types.ErrBadValue, "empty fragment", nil)
		}
		return v.Frag, nil
	case config.KindSequence:
		return sequenceExpr(v.Seq)
	case config.KindMapping:
		obj := jsast.Object()
		if _, err := MergeObject(obj, v.Obj); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, types.Wrap(types.ErrBadValue,
			fmt.Sprintf("unknown value kind %d", v.Kind), nil)
	}
}

// identOrLiteral prefers a coerced literal and falls back to an identifier
// reference for strings that cannot be coerced. The distinction matters
// because generated code must sometimes reference a variable name rather
// than embed a quoted string.
func identOrLiteral(s string) ast.Expr {
	expr := jsast.CoercedLiteral(s)
	if _, isString := expr.(*ast.StringLiteral); isString {
		return jsast.Ident(s)
	}
	return expr
}

// sequenceExpr builds an array literal whose elements are built by the
// same rules as any other value, in order.
func sequenceExpr(seq []config.Value) (*ast.ArrayLiteral, error) {
	arr := jsast.Array()
	for i, el := range seq {
		expr, err := valueExpr(el)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		jsast.AppendElement(arr, expr)
	}
	return arr, nil
}
