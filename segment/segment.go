package segment

import "github.com/rivo/uniseg"

// Units splits s into grapheme clusters. It returns nil for "".
func Units(s string) []string {
	var units []string
	state := -1
	for len(s) > 0 {
		var unit string
		unit, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		units = append(units, unit)
	}

	return units
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// IsUnit reports whether s is exactly one grapheme cluster.
func IsUnit(s string) bool {
	if s == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)

	return rest == ""
}

// Width returns the monospace display width of unit.
func Width(unit string) int {
	return uniseg.StringWidth(unit)
}
