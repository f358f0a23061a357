package domain

import (
	"errors"
	"strings"
)

var ErrBadStatus = errors.New("unrecognised status value")

// ParseStatus maps a boundary value (checkbox, JSON bool, form flag) to a strict bool.
// An absent checkbox arrives as "", which is false.
func ParseStatus(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "yes":
		return true, nil
	case "", "off", "false", "0", "no":
		return false, nil
	}
	return false, ErrBadStatus
}

// StatusColumn is the storage form of a status flag.
func StatusColumn(active bool) int {
	if active {
		return 1
	}
	return 0
}

// StatusFromColumn normalises the stored small integer back to a bool.
func StatusFromColumn(v int) bool { return v != 0 }
