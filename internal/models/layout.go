package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned when a layout mode cannot be parsed.
var ErrUnknownLayout = errors.New("unknown layout mode")

// LayoutMode selects the directory topology of a generated project.
type LayoutMode string

const (
	// LayoutSingle produces a flat src/ (+ test/) project.
	LayoutSingle LayoutMode = "single"

	// LayoutMulti produces a packages/ workspace of typings, helpers, main and test packages.
	LayoutMulti LayoutMode = "multi"
)

// IsValid checks if the layout mode is valid
func (l LayoutMode) IsValid() bool {
	switch l {
	case LayoutSingle, LayoutMulti:
		return true
	default:
		return false
	}
}

// String returns the string representation of LayoutMode
func (l LayoutMode) String() string {
	return string(l)
}

// ParseLayoutMode parses a string into a LayoutMode.
// "package" and "packages" are accepted as aliases for single and multi.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "package":
		return LayoutSingle, nil
	case "multi", "packages":
		return LayoutMulti, nil
	default:
		return "", fmt.Errorf("%w: %q (must be single or multi)", ErrUnknownLayout, s)
	}
}
