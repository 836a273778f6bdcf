// Package layout implements the flexbox algorithm used to position scene-graph
// nodes in terminal cells.
//
// The engine works entirely against the Layoutable interface, so any tree
// shape can participate: it reads a Style, asks for children and intrinsic
// sizes, and writes back a computed Layout. Coordinates are integer terminal
// cells; the root is constrained by the available terminal width and height.
package layout
