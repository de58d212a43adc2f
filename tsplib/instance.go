// Package tsplib - instance (coordinate section) reading.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/geomst/geomst/geom"
)

// Sentinel and terminator tokens of the TSPLIB convention. Matching is by
// substring containment, exactly as the original format is commonly
// consumed (a line "EOF\n" and a line " EOF " both terminate).
const (
	coordSection   = "NODE_COORD_SECTION"
	tourSection    = "TOUR_SECTION"
	eofSentinel    = "EOF"
	tourTerminator = "-1"
)

// ErrNoCoordSection indicates the instance file ended without a line
// containing NODE_COORD_SECTION.
var ErrNoCoordSection = errors.New("tsplib: NODE_COORD_SECTION not found")

// ErrBadCoordLine indicates a coordinate line with fewer than three fields
// or non-numeric x/y fields.
var ErrBadCoordLine = errors.New("tsplib: malformed coordinate line")

// ParseInstance reads the coordinate section from r and returns the points
// in file order. The per-line <id> field is ignored; indices into the
// returned slice are the node identifiers everywhere downstream.
//
// Complexity: O(file size).
func ParseInstance(r io.Reader) ([]geom.Point, error) {
	sc := bufio.NewScanner(r)

	// 1. Skip ahead to the coordinate section sentinel.
	if !seek(sc, coordSection) {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("tsplib: %w", err)
		}

		return nil, ErrNoCoordSection
	}

	// 2. One point per line until a terminator.
	var pts []geom.Point
	var (
		line   string
		fields []string
		x, y   float64
		err    error
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.Contains(line, eofSentinel) {
			break
		}
		fields = strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordLine, line)
		}
		if x, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordLine, line)
		}
		if y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordLine, line)
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	return pts, nil
}

// ReadInstance opens path and parses it with ParseInstance.
func ReadInstance(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	return ParseInstance(f)
}

// seek advances sc just past the first line containing token, reporting
// whether such a line existed.
func seek(sc *bufio.Scanner, token string) bool {
	for sc.Scan() {
		if strings.Contains(sc.Text(), token) {
			return true
		}
	}

	return false
}
