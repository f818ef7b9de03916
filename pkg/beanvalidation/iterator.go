package beanvalidation

import "github.com/dmitrymomot/beanform/pkg/constraint"

// ConstraintIterator yields the constraint descriptors of a property.
// Metadata is fetched from the engine on the first call to Next. An iterator
// cannot be restarted.
//
//	it := NewConstraintIterator(engine, property)
//	for it.Next() {
//	    d := it.Descriptor()
//	    ...
//	}
//	if err := it.Err(); err != nil {
//	    ...
//	}
type ConstraintIterator struct {
	engine   ConstraintEngine
	property Property
	groups   []constraint.Group
	filtered bool

	loaded  bool
	descs   []constraint.Descriptor
	pos     int
	current constraint.Descriptor
	err     error
}

// NewConstraintIterator iterates every constraint of property.
func NewConstraintIterator(engine ConstraintEngine, property Property) *ConstraintIterator {
	return &ConstraintIterator{engine: engine, property: property}
}

// NewGroupConstraintIterator iterates the constraints of property applicable to
// at least one of groups, as decided by constraint.AppliesTo. No groups means
// the default group.
func NewGroupConstraintIterator(engine ConstraintEngine, property Property, groups ...constraint.Group) *ConstraintIterator {
	return &ConstraintIterator{engine: engine, property: property, groups: groups, filtered: true}
}

// Next advances to the next descriptor. It returns false when the sequence is
// exhausted or metadata could not be read; see Err.
func (it *ConstraintIterator) Next() bool {
	if !it.loaded {
		it.loaded = true
		it.descs, it.err = it.engine.ConstraintsForProperty(it.property.OwnerType(), it.property.Name())
	}
	if it.err != nil {
		return false
	}

	for it.pos < len(it.descs) {
		d := it.descs[it.pos]
		it.pos++
		if it.filtered && !d.AppliesTo(it.groups...) {
			continue
		}
		it.current = d
		return true
	}
	return false
}

// Descriptor returns the descriptor Next advanced to.
func (it *ConstraintIterator) Descriptor() constraint.Descriptor {
	return it.current
}

// Err returns the error that stopped the iteration, if any.
func (it *ConstraintIterator) Err() error {
	return it.err
}
