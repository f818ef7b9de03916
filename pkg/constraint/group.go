package constraint

import "slices"

// Group is a marker partitioning constraints into applicability subsets.
type Group string

// DefaultGroup is the group of every constraint declared without groups.
const DefaultGroup Group = "default"

var defaultGroups = []Group{DefaultGroup}

// AppliesTo reports whether a constraint declared with the given groups applies
// when validating with the requested groups.
//
// An empty declared set is an implicit DefaultGroup membership and must be
// checked as such: DefaultGroup is never written into Descriptor.Groups for
// constraints declared without groups. An empty requested set means
// "default group only".
func AppliesTo(declared, requested []Group) bool {
	if len(declared) == 0 {
		declared = defaultGroups
	}
	if len(requested) == 0 {
		requested = defaultGroups
	}
	for _, g := range declared {
		if slices.Contains(requested, g) {
			return true
		}
	}
	return false
}

// IsDefault reports whether a constraint declared with the given groups
// belongs to the default group.
func IsDefault(declared []Group) bool {
	return len(declared) == 0 || slices.Contains(declared, DefaultGroup)
}
