// Package util has small helpers shared by the game packages.
package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a nice prose list of the given items. The final two
// items are joined with the given conjunction ("and", "or"); three or more
// items get an oxford comma.
func MakeTextList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}

	listed := make([]string, len(items))
	copy(listed, items)
	listed[len(listed)-1] = conj + " " + listed[len(listed)-1]

	return strings.Join(listed, ", ")
}

// OrderedKeys returns the keys of m, ordered a particular way. The order is
// guaranteed to be the same on every run.
//
// As of this writing, the order is alphabetical, but this function does not
// guarantee this will always be the case.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
