// Package knot draws an endless Celtic knot pattern.
//
// Generate turns a canvas size and a pair of knot parameters into strands
// and diamonds. A Surface keeps the current primitives, paints them with gg
// and reacts to key, size and lifecycle events coming from a shiny window.
package knot

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'knot'
func tracer() tracing.Trace {
	return tracing.Select("knot")
}
