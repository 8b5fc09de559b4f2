// Package registry provides the central "glue" for the element modules.
//
// The Registry maps the element kinds used in deck files (e.g. `card` in
// `element "card" "problem" { ... }`) to the compiled Go handlers that draw
// them, together with a constructor for each handler's input struct.
//
// During application startup, the registry is populated and then validated:
// every handler's input struct must be decodable, and every element a deck
// uses must have a handler. This surfaces mismatches between deck files and
// Go code before a single slide is drawn.
package registry
