// Package inline renders declarative UI trees into the terminal's normal
// screen buffer, Ink-style: build a tree of boxes and styled text, and the
// renderer lays it out with flexbox, paints it into a cell buffer, diffs the
// result against the previous frame line by line, and writes only what
// changed. Content committed through a Static node scrolls away like
// ordinary program output and is never repainted.
//
// Users import this single package for the complete public API: scene-graph
// construction, layout types, text styling, color level detection, the
// renderer, and the mock and virtual terminals used for testing.
package inline
