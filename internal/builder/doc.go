/*
Package builder is the deck-assembly routine. It turns the format-agnostic
deck model (from the 'config' package) into an in-memory presentation (the
'pptx' package) by running each element through its registered handler.

Building happens in two passes:

 1. Decode: the theme, every slide background and every element body are
    evaluated and decoded into their Go input structs. All problems found in
    this pass are collected and returned together as hcl.Diagnostics, each
    pointing at the offending source range. Nothing is drawn if any fail.
 2. Draw: slides are created in declaration order and each element's handler
    draws onto the slide through a canvas.Canvas.

Elements are decoded once and never mutated after they are drawn.
*/
package builder
