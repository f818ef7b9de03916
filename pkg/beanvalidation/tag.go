package beanvalidation

import (
	"reflect"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/beanform/pkg/constraint"
)

// Tag is the markup tag emitted for a form component.
type Tag struct {
	Name  string
	Attrs templ.Attributes
}

// NewTag returns an empty tag.
func NewTag(name string) *Tag {
	return &Tag{Name: name, Attrs: templ.Attributes{}}
}

// Put sets attribute key to value.
func (t *Tag) Put(key string, value any) {
	if t.Attrs == nil {
		t.Attrs = templ.Attributes{}
	}
	t.Attrs[key] = value
}

func (t *Tag) Get(key string) (any, bool) {
	v, ok := t.Attrs[key]
	return v, ok
}

func (t *Tag) Has(key string) bool {
	_, ok := t.Attrs[key]
	return ok
}

func (t *Tag) Remove(key string) {
	delete(t.Attrs, key)
}

// TagModifier mutates the tag of a component for one matched constraint.
type TagModifier interface {
	Modify(c FormComponent, tag *Tag, d constraint.Descriptor)
}

// TagModifierFunc adapts a function to TagModifier.
type TagModifierFunc func(c FormComponent, tag *Tag, d constraint.Descriptor)

func (f TagModifierFunc) Modify(c FormComponent, tag *Tag, d constraint.Descriptor) {
	f(c, tag, d)
}

// DefaultTagModifiers returns the built-in modifiers keyed by constraint kind.
func DefaultTagModifiers() map[constraint.Kind]TagModifier {
	return map[constraint.Kind]TagModifier{
		constraint.KindMax:   LengthAttrModifier{Attr: "maxlength"},
		constraint.KindLTE:   LengthAttrModifier{Attr: "maxlength"},
		constraint.KindLen:   LengthAttrModifier{Attr: "maxlength"},
		constraint.KindMin:   LengthAttrModifier{Attr: "minlength"},
		constraint.KindGTE:   LengthAttrModifier{Attr: "minlength"},
		constraint.KindEmail: InputTypeModifier{Type: "email"},
	}
}

// LengthAttrModifier copies the numeric parameter of a length constraint on a
// string field into Attr of input and textarea tags.
type LengthAttrModifier struct {
	Attr string
}

func (m LengthAttrModifier) Modify(_ FormComponent, tag *Tag, d constraint.Descriptor) {
	if tag.Name != "input" && tag.Name != "textarea" {
		return
	}
	if !isStringType(d.Type) {
		return
	}
	n, err := strconv.Atoi(d.Param)
	if err != nil || n < 0 {
		return
	}
	tag.Put(m.Attr, strconv.Itoa(n))
}

// InputTypeModifier sets the type attribute of input tags.
type InputTypeModifier struct {
	Type string
}

func (m InputTypeModifier) Modify(_ FormComponent, tag *Tag, _ constraint.Descriptor) {
	if tag.Name != "input" {
		return
	}
	tag.Put("type", m.Type)
}

func isStringType(t reflect.Type) bool {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.String
}
