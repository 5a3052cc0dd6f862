package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
	"github.com/confkit-io/confkit/pkg/config"
	"github.com/confkit-io/confkit/pkg/types"
	"github.com/confkit-io/confkit/rewrite"
)

// exportsTarget is the assignment left-hand side that marks the
// configuration object in a CommonJS config file.
const exportsTarget = "module.exports"

// Document is one parsed configuration source and its export object.
type Document struct {
	prog    *ast.Program
	exports *ast.ObjectLiteral
}

// Parse parses src and locates the configuration object: the right-hand
// side of a `module.exports = {...}` assignment, or a bare top-level
// object expression.
func Parse(src string) (*Document, error) {
	prog, err := jsast.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	exports := findExports(prog)
	if exports == nil {
		return nil, types.Wrap(types.ErrNotFound, "no module.exports object", nil)
	}
	return &Document{prog: prog, exports: exports}, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return doc, nil
}

func findExports(prog *ast.Program) *ast.ObjectLiteral {
	for _, stmt := range prog.Body {
		es, ok := stmt.Stmt.(*ast.ExpressionStatement)
		if !ok {
			continue
		}
		switch expr := es.Expression.Expr.(type) {
		case *ast.AssignExpression:
			if expr.Left.Expr == nil || jsast.ExprSource(expr.Left.Expr) != exportsTarget {
				continue
			}
			if obj, ok := expr.Right.Expr.(*ast.ObjectLiteral); ok {
				return obj
			}
		case *ast.ObjectLiteral:
			return expr
		}
	}
	return nil
}

// Exports returns the configuration object literal. Mutations through the
// rewrite package are visible in Render output.
func (d *Document) Exports() *ast.ObjectLiteral { return d.exports }

// Section returns the object literal stored under name at the top level of
// the export object. Returns ErrNotFound when the property is absent and
// ErrNotObject when it holds a non-object value.
func (d *Document) Section(name string) (*ast.ObjectLiteral, error) {
	prop := jsast.PropertyByName(d.exports, name)
	if prop == nil {
		return nil, types.Wrap(types.ErrNotFound, "section "+name, nil)
	}
	obj := jsast.ObjectValue(prop)
	if obj == nil {
		return nil, types.Wrap(types.ErrNotObject, "section "+name, nil)
	}
	return obj, nil
}

// SectionNames returns the top-level property names of the export object
// in source order.
func (d *Document) SectionNames() []string {
	var names []string
	for _, prop := range d.exports.Value {
		if kv, ok := prop.Prop.(*ast.PropertyKeyed); ok {
			names = append(names, jsast.PropertyKeyName(kv))
		}
	}
	return names
}

// SectionSource renders the value stored under name back to source text.
// Unlike Section, the value does not have to be an object literal.
func (d *Document) SectionSource(name string) (string, error) {
	prop := jsast.PropertyByName(d.exports, name)
	if prop == nil {
		return "", types.Wrap(types.ErrNotFound, "section "+name, nil)
	}
	return jsast.ExprSource(prop.Value.Expr), nil
}

// EnsureSection returns the named section, creating an empty one when
// absent.
func (d *Document) EnsureSection(name string) (*ast.ObjectLiteral, error) {
	if prop := jsast.PropertyByName(d.exports, name); prop != nil {
		obj := jsast.ObjectValue(prop)
		if obj == nil {
			return nil, types.Wrap(types.ErrNotObject, "section "+name, nil)
		}
		return obj, nil
	}
	obj := jsast.Object()
	jsast.AppendProperty(d.exports, name, obj)
	return obj, nil
}

// Merge appends desc to the export object, create-only.
func (d *Document) Merge(desc *config.Object) (rewrite.Applied, error) {
	return rewrite.MergeObject(d.exports, desc)
}

// MergeSection merges desc into the named section. See
// rewrite.MergeNamedObject for create/reassign semantics.
func (d *Document) MergeSection(name string, desc *config.Object, reassign bool) (rewrite.Applied, error) {
	return rewrite.MergeNamedObject(d.exports, name, desc, reassign)
}

// AddPlugin upserts a plugin constructor call into the plugins array,
// creating the array when absent.
func (d *Document) AddPlugin(dottedName string, opts *config.Object) (rewrite.Applied, error) {
	arr, err := d.pluginsArray()
	if err != nil {
		return rewrite.Applied{}, err
	}
	return rewrite.UpsertPlugin(arr, dottedName, opts)
}

func (d *Document) pluginsArray() (*ast.ArrayLiteral, error) {
	prop := jsast.PropertyByName(d.exports, "plugins")
	if prop == nil {
		arr := jsast.Array()
		jsast.AppendProperty(d.exports, "plugins", arr)
		return arr, nil
	}
	arr := jsast.ArrayValue(prop)
	if arr == nil {
		return nil, types.Wrap(types.ErrNotArray, "property plugins", nil)
	}
	return arr, nil
}

// Render regenerates the configuration source from the mutated tree.
func (d *Document) Render() string {
	return jsast.Render(d.prog)
}

// Save writes the rendered source to path atomically: a temp file in the
// same directory is renamed over the target.
func (d *Document) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(d.Render()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write config %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace config %s: %w", path, err)
	}
	return nil
}
