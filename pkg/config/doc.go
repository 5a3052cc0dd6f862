// Package config models the Configuration Description: the plain nested
// key/value input describing desired settings, independent of any AST
// representation.
//
// Values are an explicit tagged variant (scalar, identifier, pattern,
// sequence, mapping, pre-parsed fragment) decided at construction time, so
// downstream merge code never re-derives a value's shape ad hoc. Objects
// preserve key insertion order; generated properties appear in exactly the
// order the description listed them.
//
// Descriptions are transient: they exist only for the duration of one
// merge call and are never mutated by the merger.
package config
