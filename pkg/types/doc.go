// Package types defines the shared error taxonomy for confkit.
//
// Errors carry a stable ErrKind so callers can branch on intent rather
// than message text. Sentinel errors are provided for the common cases;
// wrap them with fmt.Errorf("%w") to add context.
package types
