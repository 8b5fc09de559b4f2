// Package pptx writes PresentationML (.pptx) packages.
//
// It models only what a layout-driven deck needs: slides with solid
// backgrounds, text boxes, preset auto-shapes (rectangle, rounded rectangle,
// ellipse) and pictures. The package is written deterministically, so the
// same Presentation always serialises to the same bytes.
package pptx
