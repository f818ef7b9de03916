package beanvalidation_test

import (
	"reflect"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
	"github.com/dmitrymomot/beanform/pkg/constraint"
)

// MockEngine is a mock implementation of beanvalidation.ConstraintEngine.
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) ConstraintsForProperty(ownerType reflect.Type, field string) ([]constraint.Descriptor, error) {
	args := m.Called(ownerType, field)
	descs, _ := args.Get(0).([]constraint.Descriptor)
	return descs, args.Error(1)
}

func (m *MockEngine) ValidateValue(owner any, field string, value any, groups ...constraint.Group) ([]constraint.Violation, error) {
	args := m.Called(owner, field, value, groups)
	violations, _ := args.Get(0).([]constraint.Violation)
	return violations, args.Error(1)
}

// MockResolver is a mock implementation of beanvalidation.PropertyResolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveProperty(c beanvalidation.FormComponent) (beanvalidation.Property, bool) {
	args := m.Called(c)
	p, _ := args.Get(0).(beanvalidation.Property)
	return p, args.Bool(1)
}

type fakeComponent struct {
	id       string
	required bool
	model    any
}

func (c *fakeComponent) ID() string                { return c.id }
func (c *fakeComponent) SetRequired(required bool) { c.required = required }
func (c *fakeComponent) IsRequired() bool          { return c.required }
func (c *fakeComponent) Model() any                { return c.model }

type plainComponent struct{}

func (plainComponent) ID() string { return "label" }

type propertyModel struct {
	target any
	expr   string
}

func (m propertyModel) Target() any                { return m.target }
func (m propertyModel) PropertyExpression() string { return m.expr }
func (m propertyModel) String() string             { return "PropertyModel:" + m.expr }

type objectModel struct {
	object any
}

func (m objectModel) Object() any { return m.object }

type valueModel struct {
	value any
}

func (m valueModel) String() string { return "ValueModel:unbound" }

type fakeValidatable struct {
	value  any
	errors []string
}

func (v *fakeValidatable) Value() any           { return v.value }
func (v *fakeValidatable) Error(message string) { v.errors = append(v.errors, message) }

type signupForm struct {
	Email string   `validate:"required,email,max=64"`
	Nick  string   `validate:"required,min=3" groups:"strict"`
	Bio   string   `validate:"max=140"`
	Code  string   `validate:"notblank" groups:"default,strict"`
	Tags  []string `validate:"notempty" groups:"notempty:signup"`
	Age   int      `validate:"gte=18"`
}
