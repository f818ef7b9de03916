package beanvalidation

import (
	"fmt"
	"reflect"
)

// Property identifies a validatable value: an owning object and a field path
// understood by the constraint engine.
type Property struct {
	owner any
	name  string
}

// NewProperty returns the property name of owner.
func NewProperty(owner any, name string) Property {
	return Property{owner: owner, name: name}
}

func (p Property) Owner() any { return p.owner }

func (p Property) Name() string { return p.name }

// OwnerType returns the declared type of the owner with pointers dereferenced.
func (p Property) OwnerType() reflect.Type {
	t := reflect.TypeOf(p.owner)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func (p Property) String() string {
	return fmt.Sprintf("%v.%s", p.OwnerType(), p.name)
}
