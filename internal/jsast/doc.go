// Package jsast wraps the go-fast toolkit with the small set of node
// constructors and queries confkit needs.
//
// Everything here is a thin delegation layer: go-fast owns parsing, node
// kinds, and code generation. jsast adds literal coercion, dotted-name
// construction (via the toolkit's own parser), and lookup helpers for
// properties and plugin constructor calls. There is no tree-walking
// framework; every query is a single-level scan.
package jsast
