package beanvalidation_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
	"github.com/dmitrymomot/beanform/pkg/constraint"
)

func TestTag(t *testing.T) {
	tag := beanvalidation.NewTag("input")
	assert.False(t, tag.Has("name"))

	tag.Put("name", "email")
	v, ok := tag.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "email", v)

	tag.Remove("name")
	assert.False(t, tag.Has("name"))

	var zero beanvalidation.Tag
	zero.Put("id", "x")
	assert.True(t, zero.Has("id"))
}

func TestLengthAttrModifier(t *testing.T) {
	stringType := reflect.TypeOf("")
	m := beanvalidation.LengthAttrModifier{Attr: "maxlength"}

	tests := []struct {
		name    string
		tagName string
		d       constraint.Descriptor
		want    any
	}{
		{"input string", "input", constraint.Descriptor{Kind: constraint.KindMax, Param: "20", Type: stringType}, "20"},
		{"textarea string", "textarea", constraint.Descriptor{Kind: constraint.KindMax, Param: "500", Type: stringType}, "500"},
		{"string pointer", "input", constraint.Descriptor{Kind: constraint.KindMax, Param: "8", Type: reflect.TypeOf((*string)(nil))}, "8"},
		{"select is ignored", "select", constraint.Descriptor{Kind: constraint.KindMax, Param: "20", Type: stringType}, nil},
		{"numbers are ignored", "input", constraint.Descriptor{Kind: constraint.KindMax, Param: "20", Type: reflect.TypeOf(0)}, nil},
		{"non integer parameter", "input", constraint.Descriptor{Kind: constraint.KindMax, Param: "1.5", Type: stringType}, nil},
		{"negative parameter", "input", constraint.Descriptor{Kind: constraint.KindMax, Param: "-1", Type: stringType}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := beanvalidation.NewTag(tt.tagName)
			m.Modify(&fakeComponent{}, tag, tt.d)

			got, ok := tag.Get("maxlength")
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputTypeModifier(t *testing.T) {
	m := beanvalidation.InputTypeModifier{Type: "email"}

	input := beanvalidation.NewTag("input")
	m.Modify(&fakeComponent{}, input, constraint.Descriptor{Kind: constraint.KindEmail})
	assert.Equal(t, "email", input.Attrs["type"])

	textarea := beanvalidation.NewTag("textarea")
	m.Modify(&fakeComponent{}, textarea, constraint.Descriptor{Kind: constraint.KindEmail})
	assert.False(t, textarea.Has("type"))
}
