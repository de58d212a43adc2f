// Package render draws the MST, a reference tour, and their symmetric
// difference with gonum.org/v1/plot.
//
// Conventions (matching the classic matplotlib rendering of these plots):
//
//	MST edges  — solid blue segments with cross markers
//	tour       — dotted red open path with cross markers
//	diff adds  — MST edges missing from the tour: solid red
//	diff dels  — tour edges absent from the MST: dotted red
//
// Axes are forced square: both ranges get the same span so that one unit
// of x measures the same as one unit of y.
//
// The edge-set arithmetic (TourEdges, Diff) is pure and separately
// testable; plot construction sits on top of it. Save writes png, svg or
// pdf depending on the output file's extension.
package render
