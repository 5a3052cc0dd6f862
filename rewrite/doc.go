// Package rewrite implements the config-to-AST merger: it translates a
// plain Configuration Description into AST fragments attached to, or
// merged with, a caller-supplied target subtree.
//
// Every operation mutates the target in place. Nothing is copied and no
// operation returns a new array or object; the caller owns the subtree
// exclusively for the duration of a call. Properties are appended in the
// description's key order, which matters both for generated-code
// readability and for tests that assert exact output.
//
// Three entry points cover the fixed patterns this package handles:
//
//   - MergeObject: create-only recursive append of a description into an
//     object literal. It never searches for existing keys; calling it
//     twice with overlapping keys produces duplicate properties. That is
//     documented behavior, not a bug; callers guarantee key uniqueness.
//   - MergeNamedObject: locate a named option object inside a root object
//     and either append (create mode) or overwrite/extend in place
//     (reassign mode). Reassign mode merges arrays with first-occurrence
//     deduplication and recurses into nested objects.
//   - UpsertPlugin: find a `new X(...)` constructor call in a plugins
//     array by dotted callee name and shallow-merge its options argument,
//     or append a new call when absent.
//
// Failure semantics are deliberately thin: a missing property or plugin is
// the signal to create, not an error. Only a target of the wrong node
// shape fails, surfacing synchronously to the caller. Nothing is retried.
package rewrite
