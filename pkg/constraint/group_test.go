package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/beanform/pkg/constraint"
)

func TestAppliesTo(t *testing.T) {
	const strict constraint.Group = "strict"
	const signup constraint.Group = "signup"

	tests := []struct {
		name      string
		declared  []constraint.Group
		requested []constraint.Group
		want      bool
	}{
		{"undeclared matches empty request", nil, nil, true},
		{"undeclared matches explicit default", nil, []constraint.Group{constraint.DefaultGroup}, true},
		{"undeclared does not match other group", nil, []constraint.Group{strict}, false},
		{"explicit default matches empty request", []constraint.Group{constraint.DefaultGroup}, nil, true},
		{"grouped does not match empty request", []constraint.Group{strict}, nil, false},
		{"grouped matches overlapping request", []constraint.Group{strict, signup}, []constraint.Group{signup}, true},
		{"grouped does not match disjoint request", []constraint.Group{strict}, []constraint.Group{signup}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraint.AppliesTo(tt.declared, tt.requested))
		})
	}
}

func TestIsDefault(t *testing.T) {
	assert.True(t, constraint.IsDefault(nil))
	assert.True(t, constraint.IsDefault([]constraint.Group{"strict", constraint.DefaultGroup}))
	assert.False(t, constraint.IsDefault([]constraint.Group{"strict"}))
}

func TestKind_IsNotNull(t *testing.T) {
	for _, k := range []constraint.Kind{constraint.KindRequired, constraint.KindNotBlank, constraint.KindNotEmpty} {
		assert.True(t, k.IsNotNull(), k)
	}
	assert.False(t, constraint.KindMax.IsNotNull())
	assert.False(t, constraint.Kind("required_if").IsNotNull())
}
