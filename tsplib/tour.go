// Package tsplib - tour (TOUR_SECTION) reading.
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoTourSection indicates the tour file ended without a line containing
// TOUR_SECTION.
var ErrNoTourSection = errors.New("tsplib: TOUR_SECTION not found")

// ErrBadTourLine indicates a tour line whose first field is not an integer.
var ErrBadTourLine = errors.New("tsplib: malformed tour line")

// ParseTour reads the tour section from r and returns the 1-based vertex
// indices in visit order. The tour is open here; consumers that treat it
// as a cycle close it themselves (see render.TourEdges).
//
// Termination follows the convention literally: a blank line, or any line
// containing -1 or EOF, ends the section.
//
// Complexity: O(file size).
func ParseTour(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)

	if !seek(sc, tourSection) {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("tsplib: %w", err)
		}

		return nil, ErrNoTourSection
	}

	var tour []int
	var (
		line string
		idx  int
		err  error
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.Contains(line, tourTerminator) || strings.Contains(line, eofSentinel) {
			break
		}
		if idx, err = strconv.Atoi(strings.Fields(line)[0]); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadTourLine, line)
		}
		tour = append(tour, idx)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	return tour, nil
}

// ReadTour opens path and parses it with ParseTour.
func ReadTour(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	return ParseTour(f)
}
