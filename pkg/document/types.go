package document

import (
	"github.com/confkit-io/confkit/pkg/config"
	"github.com/confkit-io/confkit/pkg/types"
	"github.com/confkit-io/confkit/rewrite"
)

// Re-export commonly used types so users only need to import pkg/document.

// Description types.
type (
	Object = config.Object
	Value  = config.Value
	Kind   = config.Kind
)

// Description constructors.
var (
	NewObject  = config.NewObject
	String     = config.String
	Bool       = config.Bool
	Number     = config.Number
	Ident      = config.Ident
	Null       = config.Null
	Pattern    = config.Pattern
	Sequence   = config.Sequence
	Mapping    = config.Mapping
	Fragment   = config.Fragment
	JS         = config.JS
	DecodeYAML = config.DecodeYAML
)

// Merge statistics.
type Applied = rewrite.Applied

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Common error sentinels.
var (
	ErrParse     = types.ErrParse
	ErrNotObject = types.ErrNotObject
	ErrNotArray  = types.ErrNotArray
	ErrNotFound  = types.ErrNotFound
	ErrBadValue  = types.ErrBadValue
)
