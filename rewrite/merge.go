package rewrite

import (
	"fmt"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
	"github.com/confkit-io/confkit/pkg/config"
	"github.com/confkit-io/confkit/pkg/types"
)

// MergeObject appends every key of desc to target, in description order.
//
// This entry point only creates; it never searches for a pre-existing
// property with the same key. Applying overlapping descriptions through it
// duplicates properties; callers that need replace semantics use
// MergeNamedObject with reassign enabled.
func MergeObject(target *ast.ObjectLiteral, desc *config.Object) (Applied, error) {
	var applied Applied
	if target == nil {
		return applied, types.ErrNotObject
	}
	for _, key := range desc.Keys() {
		v, _ := desc.Get(key)

		// Injectable marker: embed the raw value node, never a nested
		// object wrapper.
		if config.IsInjectKey(key) {
			expr, err := valueExpr(v)
			if err != nil {
				return applied, fmt.Errorf("key %q: %w", key, err)
			}
			jsast.AppendProperty(target, key, expr)
			applied.PropertiesAdded++
			continue
		}

		switch v.Kind {
		case config.KindMapping:
			// Append key: {} first, then fill it, so deeply nested
			// descriptions keep strict top-down property order.
			nested := jsast.Object()
			jsast.AppendProperty(target, key, nested)
			applied.PropertiesAdded++
			sub, err := MergeObject(nested, v.Obj)
			applied.merge(sub)
			if err != nil {
				return applied, fmt.Errorf("key %q: %w", key, err)
			}
		default:
			expr, err := valueExpr(v)
			if err != nil {
				return applied, fmt.Errorf("key %q: %w", key, err)
			}
			jsast.AppendProperty(target, key, expr)
			applied.PropertiesAdded++
		}
	}
	return applied, nil
}

// MergeNamedObject locates the object-valued property name inside root and
// merges desc into it.
//
// With reassign disabled the named object is created when absent and every
// description key is appended create-only, one level down. With reassign
// enabled the named object must already exist (ErrNotFound otherwise) and
// matching properties are overwritten or extended in place: scalars are
// replaced, sequences are merged with first-occurrence deduplication, and
// nested mappings recurse with reassign still enabled.
//
// When root holds several properties with the same name, all of them are
// visited and mutated. The output order in that case is undefined; callers
// are expected to keep keys unique.
func MergeNamedObject(root *ast.ObjectLiteral, name string, desc *config.Object, reassign bool) (Applied, error) {
	var applied Applied
	if root == nil {
		return applied, types.ErrNotObject
	}

	matches := jsast.PropertiesByName(root, name)
	if len(matches) == 0 {
		if reassign {
			return applied, types.Wrap(types.ErrNotFound, "no object property "+name, nil)
		}
		nested := jsast.Object()
		jsast.AppendProperty(root, name, nested)
		applied.PropertiesAdded++
		sub, err := MergeObject(nested, desc)
		applied.merge(sub)
		if err != nil {
			return applied, fmt.Errorf("section %q: %w", name, err)
		}
		return applied, nil
	}

	for _, prop := range matches {
		obj := jsast.ObjectValue(prop)
		if obj == nil {
			return applied, types.Wrap(types.ErrNotObject, "property "+name, nil)
		}
		var sub Applied
		var err error
		if reassign {
			sub, err = reassignInto(obj, desc)
		} else {
			sub, err = MergeObject(obj, desc)
		}
		applied.merge(sub)
		if err != nil {
			return applied, fmt.Errorf("section %q: %w", name, err)
		}
	}
	return applied, nil
}

// reassignInto overwrites or extends obj's properties from desc, in
// description order.
func reassignInto(obj *ast.ObjectLiteral, desc *config.Object) (Applied, error) {
	var applied Applied
	for _, key := range desc.Keys() {
		v, _ := desc.Get(key)
		existing := jsast.PropertiesByName(obj, key)

		switch v.Kind {
		case config.KindSequence:
			sub, err := reassignSequence(obj, key, existing, v.Seq)
			applied.merge(sub)
			if err != nil {
				return applied, fmt.Errorf("key %q: %w", key, err)
			}
		case config.KindMapping:
			// A missing nested object is created only by the create-only
			// path; reassign silently skips keys with nothing to update.
			for _, prop := range existing {
				nested := jsast.ObjectValue(prop)
				if nested == nil {
					return applied, types.Wrap(types.ErrNotObject, "property "+key, nil)
				}
				sub, err := reassignInto(nested, v.Obj)
				applied.merge(sub)
				if err != nil {
					return applied, fmt.Errorf("key %q: %w", key, err)
				}
			}
		default:
			expr, err := valueExpr(v)
			if err != nil {
				return applied, fmt.Errorf("key %q: %w", key, err)
			}
			if len(existing) == 0 {
				jsast.AppendProperty(obj, key, expr)
				applied.PropertiesAdded++
				break
			}
			for _, prop := range existing {
				prop.Value = &ast.Expression{Expr: expr}
				applied.PropertiesReplaced++
			}
		}
	}
	return applied, nil
}

// reassignSequence merges a description sequence into an existing array
// property: existing elements first, new ones after, deduplicated by
// rendered value with first-occurrence order preserved.
func reassignSequence(obj *ast.ObjectLiteral, key string, existing []*ast.PropertyKeyed, seq []config.Value) (Applied, error) {
	var applied Applied

	fresh, err := sequenceExpr(seq)
	if err != nil {
		return applied, err
	}

	if len(existing) == 0 {
		jsast.AppendProperty(obj, key, jsast.Array(DedupeExprs(elementExprs(fresh))...))
		applied.PropertiesAdded++
		return applied, nil
	}

	for _, prop := range existing {
		arr := jsast.ArrayValue(prop)
		if arr == nil {
			// Existing value is not an array; the new sequence wins.
			prop.Value = &ast.Expression{Expr: jsast.Array(DedupeExprs(elementExprs(fresh))...)}
			applied.PropertiesReplaced++
			continue
		}
		combined := append(elementExprs(arr), elementExprs(fresh)...)
		deduped := DedupeExprs(combined)
		arr.Value = arr.Value[:0]
		for _, e := range deduped {
			jsast.AppendElement(arr, e)
		}
		applied.PropertiesReplaced++
	}
	return applied, nil
}

func elementExprs(arr *ast.ArrayLiteral) []ast.Expr {
	out := make([]ast.Expr, 0, len(arr.Value))
	for _, el := range arr.Value {
		out = append(out, el.Expr)
	}
	return out
}
