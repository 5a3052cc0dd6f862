package jsast

import (
	"strings"

	"github.com/t14raptor/go-fast/ast"
	"github.com/t14raptor/go-fast/generator"
	"github.com/t14raptor/go-fast/parser"

	"github.com/confkit-io/confkit/pkg/types"
)

// ParseExpr wraps an arbitrary source fragment as an embeddable expression.
// The fragment is parenthesized so object literals parse as expressions
// rather than block statements.
func ParseExpr(src string) (ast.Expr, error) {
	prog, err := parser.ParseFile("(" + src + ");")
	if err != nil {
		return nil, types.Wrap(types.ErrParse, "fragment "+quoteSnippet(src), err)
	}
	if len(prog.Body) == 0 {
		return nil, badFragment(src)
	}
	stmt, ok := prog.Body[0].Stmt.(*ast.ExpressionStatement)
	if !ok || stmt.Expression.Expr == nil {
		return nil, badFragment(src)
	}
	return stmt.Expression.Expr, nil
}

// ParseProgram parses a complete source file.
func ParseProgram(src string) (*ast.Program, error) {
	prog, err := parser.ParseFile(src)
	if err != nil {
		return nil, types.Wrap(types.ErrParse, "", err)
	}
	return prog, nil
}

// Render generates source for a whole program.
func Render(prog *ast.Program) string {
	return generator.Generate(prog)
}

// ExprSource renders a single expression back to source text. The
// expression is wrapped into a one-statement program for the generator and
// the statement terminator is stripped off again.
func ExprSource(e ast.Expr) string {
	prog := &ast.Program{Body: []ast.Statement{
		{Stmt: &ast.ExpressionStatement{Expression: &ast.Expression{Expr: e}}},
	}}
	src := strings.TrimSpace(generator.Generate(prog))
	src = strings.TrimSuffix(src, ";")
	// Object literals are parenthesized in statement position; peel that
	// back off so rendered values compare cleanly.
	if _, ok := e.(*ast.ObjectLiteral); ok {
		if strings.HasPrefix(src, "(") && strings.HasSuffix(src, ")") {
			src = strings.TrimSpace(src[1 : len(src)-1])
		}
	}
	return src
}

func badFragment(src string) error {
	return types.Wrap(types.ErrParse, "fragment "+quoteSnippet(src)+" is not a single expression", nil)
}

func quoteSnippet(s string) string {
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return "\"" + s + "\""
}
