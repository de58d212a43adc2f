// Package tsplib reads the two plain-text inputs the MST tool consumes:
// a point instance and a reference tour, both in the TSPLIB sentinel
// convention.
//
// Instance files: everything before a line containing NODE_COORD_SECTION
// is ignored; each following line reads "<id> <x> <y>"; a blank line or a
// line containing EOF terminates the section. The numeric <id> field is
// skipped; point identity is positional, in file order.
//
// Tour files: the sentinel is TOUR_SECTION, one 1-based vertex index per
// line, terminated by a blank line or a line containing -1 or EOF.
//
// Both readers surface parsing failures as package sentinels
// (ErrNoCoordSection, ErrBadCoordLine, ErrNoTourSection, ErrBadTourLine)
// wrapped with the offending line; I/O failures are wrapped verbatim.
// The MST core never sees files, only the resulting slices.
package tsplib
