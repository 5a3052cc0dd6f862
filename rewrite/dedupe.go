package rewrite

import (
	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
)

// DedupeExprs removes duplicate expressions from elems, keeping the first
// occurrence and its position. Equality is by rendered source text, so
// 'babel-loader' matches "babel-loader" and /\.css$/ matches an
// identically spelled pattern regardless of node identity.
func DedupeExprs(elems []ast.Expr) []ast.Expr {
	seen := make(map[string]struct{}, len(elems))
	out := make([]ast.Expr, 0, len(elems))
	for _, e := range elems {
		if e == nil {
			continue
		}
		key := jsast.ExprSource(e)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
