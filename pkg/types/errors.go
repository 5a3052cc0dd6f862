package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse     ErrKind = iota // source or fragment failed to parse
	ErrKindNotObject                // merge target is not an object literal
	ErrKindNotArray                 // plugins target is not an array literal
	ErrKindNotFound                 // missing section/property/plugin
	ErrKindValue                    // description value unusable in this position
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Msg == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind. This lets
// errors.Is match wrapped sentinels that carry extra context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Common error sentinels.
var (
	// ErrParse indicates the toolkit could not parse source text.
	ErrParse = &Error{Kind: ErrKindParse, Msg: "parse failed"}
	// ErrNotObject indicates a merge target that is not an object literal.
	ErrNotObject = &Error{Kind: ErrKindNotObject, Msg: "target is not an object literal"}
	// ErrNotArray indicates a plugins target that is not an array literal.
	ErrNotArray = &Error{Kind: ErrKindNotArray, Msg: "target is not an array literal"}
	// ErrNotFound indicates a missing section, property, or plugin call.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrBadValue indicates a description value that cannot be used here.
	ErrBadValue = &Error{Kind: ErrKindValue, Msg: "unusable description value"}
)

// Wrap returns a copy of the sentinel carrying a more specific message and
// cause, while remaining matchable with errors.Is against the sentinel.
func Wrap(sentinel *Error, msg string, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: msg, Err: cause}
}
