package constraint

import (
	"reflect"
	"slices"
)

// Descriptor is the metadata of one constraint declared on a struct field.
type Descriptor struct {
	// Kind is the constraint type.
	Kind Kind
	// Param is the constraint parameter, e.g. "20" for max=20. Empty when absent.
	Param string
	// Tag is the validator tag token the constraint was declared with.
	Tag string
	// Field is the dotted field path the constraint is declared on.
	Field string
	// Type is the declared type of the field.
	Type reflect.Type
	// Groups are the declared groups. Empty means the default group.
	Groups []Group
	// OmitEmpty is set when the field is declared with omitempty: a zero
	// value skips every constraint outside the not-null family.
	OmitEmpty bool
}

// InGroup reports whether the descriptor was declared with group g.
// Implicit default membership is not reported; use IsDefault for that.
func (d Descriptor) InGroup(g Group) bool {
	return slices.Contains(d.Groups, g)
}

// AppliesTo reports whether the descriptor applies to the requested groups.
func (d Descriptor) AppliesTo(groups ...Group) bool {
	return AppliesTo(d.Groups, groups)
}
