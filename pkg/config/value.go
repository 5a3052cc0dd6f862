package config

import (
	"strings"

	"github.com/t14raptor/go-fast/ast"

	"github.com/confkit-io/confkit/internal/jsast"
)

// Kind tags the variant a Value holds.
type Kind uint8

const (
	// KindScalar is a string payload subject to literal coercion:
	// "true"/"false" become booleans, numeric strings become numbers.
	KindScalar Kind = iota
	// KindBool is an already-typed boolean.
	KindBool
	// KindNumber is an already-typed number.
	KindNumber
	// KindIdent is a bare symbol reference: the generated code names a
	// variable instead of embedding a quoted string.
	KindIdent
	// KindNull is the JavaScript null literal.
	KindNull
	// KindPattern is a regular-expression literal (pattern + flags).
	KindPattern
	// KindSequence is an ordered list of values (an array literal).
	KindSequence
	// KindMapping is a nested ordered object (recurses).
	KindMapping
	// KindFragment is an opaque, already-parsed expression embedded
	// verbatim.
	KindFragment
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindIdent:
		return "Ident"
	case KindNull:
		return "Null"
	case KindPattern:
		return "Pattern"
	case KindSequence:
		return "Sequence"
	case KindMapping:
		return "Mapping"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Value is one Configuration Description value. The zero value is the
// empty scalar.
type Value struct {
	Kind Kind

	Str     string  // KindScalar, KindIdent payload
	Num     float64 // KindNumber payload
	Bool    bool    // KindBool payload
	Pattern string  // KindPattern body
	Flags   string  // KindPattern flags
	Seq     []Value // KindSequence elements, in order
	Obj     *Object // KindMapping payload
	Frag    ast.Expr // KindFragment payload
}

// String makes a scalar value.
func String(s string) Value { return Value{Kind: KindScalar, Str: s} }

// Bool makes a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Number makes a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// Ident makes a bare-symbol reference.
func Ident(name string) Value { return Value{Kind: KindIdent, Str: name} }

// Null makes the null value.
func Null() Value { return Value{Kind: KindNull} }

// Pattern makes a regular-expression value.
func Pattern(pattern, flags string) Value {
	return Value{Kind: KindPattern, Pattern: pattern, Flags: flags}
}

// Sequence makes an ordered list value.
func Sequence(vals ...Value) Value { return Value{Kind: KindSequence, Seq: vals} }

// Mapping makes a nested object value.
func Mapping(obj *Object) Value { return Value{Kind: KindMapping, Obj: obj} }

// Fragment wraps an already-parsed expression to embed verbatim.
func Fragment(expr ast.Expr) Value { return Value{Kind: KindFragment, Frag: expr} }

// JS parses a source fragment and wraps it as a Fragment value. Use it for
// option values that are themselves code, e.g. a require(...) call.
func JS(src string) (Value, error) {
	expr, err := jsast.ParseExpr(src)
	if err != nil {
		return Value{}, err
	}
	return Fragment(expr), nil
}

// InjectMarker flags a key to be appended as a bare value property rather
// than boxed inside a nested object wrapper.
const InjectMarker = "inject"

// IsInjectKey reports whether key carries the injectable marker.
func IsInjectKey(key string) bool {
	return strings.Contains(key, InjectMarker)
}

// Object is an insertion-ordered key -> Value mapping.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject makes an empty ordered object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set adds or replaces key. A replaced key keeps its original position.
// Returns the object for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Get returns the value for key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Len returns the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the keys in insertion order. The slice is shared; callers
// must not mutate it.
func (o *Object) Keys() []string { return o.keys }
