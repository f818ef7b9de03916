package beanvalidation

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/beanform/pkg/constraint"
	"github.com/dmitrymomot/beanform/pkg/logger"
)

// PropertyValidator validates the value of one form component against the
// constraints of its Property. Instances are bound to a single component and
// cannot be reused.
type PropertyValidator struct {
	config    *Configuration
	component FormComponent

	// Always go through resolveProperty and Groups.
	property *Property
	groups   func() []constraint.Group

	// requiredFlagSet latches after the first configure pass.
	requiredFlagSet bool
}

// ValidatorOption configures a PropertyValidator.
type ValidatorOption func(*PropertyValidator)

// WithProperty supplies the property explicitly. The resolver chain is then
// never consulted.
func WithProperty(p Property) ValidatorOption {
	return func(v *PropertyValidator) {
		v.property = &p
	}
}

// WithGroups sets the validation groups.
func WithGroups(groups ...constraint.Group) ValidatorOption {
	return func(v *PropertyValidator) {
		fixed := append([]constraint.Group(nil), groups...)
		v.groups = func() []constraint.Group { return fixed }
	}
}

// WithGroupsFunc sets a function evaluated every time the groups are needed.
func WithGroupsFunc(fn func() []constraint.Group) ValidatorOption {
	return func(v *PropertyValidator) {
		v.groups = fn
	}
}

// NewPropertyValidator creates a validator reading its Context from config.
func NewPropertyValidator(config *Configuration, opts ...ValidatorOption) *PropertyValidator {
	v := &PropertyValidator{config: config}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Groups returns the validation groups. Nil means the default group.
func (v *PropertyValidator) Groups() []constraint.Group {
	if v.groups == nil {
		return nil
	}
	return v.groups()
}

// Bind attaches the validator to c. It fails with ErrBindingConflict when the
// validator is already bound or c is not a FormComponent.
func (v *PropertyValidator) Bind(c Component) error {
	if v.component != nil {
		return fmt.Errorf("%w: validator is already bound to component %s and cannot be reused, create a new one",
			ErrBindingConflict, v.component.ID())
	}
	fc, ok := c.(FormComponent)
	if !ok {
		return fmt.Errorf("%w: %T is not a form component", ErrBindingConflict, c)
	}
	v.component = fc
	return nil
}

// Component returns the bound component, or nil.
func (v *PropertyValidator) Component() FormComponent {
	return v.component
}

// Property returns the explicit or resolved property.
func (v *PropertyValidator) Property() (Property, error) {
	return v.resolveProperty()
}

// OnConfigure runs when the host configures the component. The first call
// marks the component required if IsRequired reports so; later calls do
// nothing. A required component is never made optional.
func (v *PropertyValidator) OnConfigure(_ Component) error {
	if v.requiredFlagSet {
		return nil
	}
	if v.component == nil {
		return ErrNotBound
	}

	v.requiredFlagSet = true
	required, err := v.IsRequired()
	if err != nil {
		return err
	}
	if required {
		v.component.SetRequired(true)
	}
	return nil
}

// IsRequired reports whether a not-null family constraint of the property
// applies to the validator's groups. Without groups, constraints of the
// default group count. With groups, only constraints declaring one of them
// count; an explicitly requested default group matches only constraints that
// name it.
func (v *PropertyValidator) IsRequired() (bool, error) {
	c, err := v.context()
	if err != nil {
		return false, err
	}
	p, err := v.resolveProperty()
	if err != nil {
		return false, err
	}

	var notNull []constraint.Descriptor
	it := NewConstraintIterator(c.Engine(), p)
	for it.Next() {
		if d := it.Descriptor(); d.Kind.IsNotNull() {
			notNull = append(notNull, d)
		}
	}
	if err := it.Err(); err != nil {
		return false, fmt.Errorf("read constraints of %s: %w", p, err)
	}
	if len(notNull) == 0 {
		return false, nil
	}

	groups := v.Groups()
	for _, d := range notNull {
		if len(groups) == 0 && constraint.IsDefault(d.Groups) {
			return true, nil
		}
		for _, g := range groups {
			if d.InGroup(g) {
				return true, nil
			}
		}
	}
	return false, nil
}

// OnComponentTag lets the tag modifiers registered for the kinds of the
// property's applicable constraints mutate tag. Modifiers run once per
// matching descriptor in the order the engine declares the constraints.
func (v *PropertyValidator) OnComponentTag(_ Component, tag *Tag) error {
	c, err := v.context()
	if err != nil {
		return err
	}
	p, err := v.resolveProperty()
	if err != nil {
		return err
	}

	it := NewGroupConstraintIterator(c.Engine(), p, v.Groups()...)
	for it.Next() {
		d := it.Descriptor()
		if m, ok := c.TagModifier(d.Kind); ok {
			m.Modify(v.component, tag, d)
			c.Logger().Debug("tag modified",
				logger.Component(v.component.ID()),
				logger.Property(p),
				logger.Constraint(d.Kind),
			)
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("read constraints of %s: %w", p, err)
	}
	return nil
}

// Validate checks the candidate value of val and reports one translated
// message per violation. Violations are never returned as errors.
func (v *PropertyValidator) Validate(ctx context.Context, val Validatable) error {
	c, err := v.context()
	if err != nil {
		return err
	}
	p, err := v.resolveProperty()
	if err != nil {
		return err
	}

	violations, err := c.Engine().ValidateValue(p.Owner(), p.Name(), val.Value(), v.Groups()...)
	if err != nil {
		return fmt.Errorf("validate %s: %w", p, err)
	}

	translator := c.ViolationTranslator()
	for _, violation := range violations {
		val.Error(translator.Convert(ctx, violation))
	}
	return nil
}

func (v *PropertyValidator) context() (*Context, error) {
	if v.config == nil {
		return nil, ErrNilConfiguration
	}
	c := v.config.Context()
	if c == nil {
		return nil, ErrNilConfiguration
	}
	return c, nil
}

func (v *PropertyValidator) resolveProperty() (Property, error) {
	if v.property != nil {
		return *v.property, nil
	}
	if v.component == nil {
		return Property{}, ErrNotBound
	}
	c, err := v.context()
	if err != nil {
		return Property{}, err
	}

	p, ok := c.ResolveProperty(v.component)
	if !ok {
		err := unresolvableProperty(v.component)
		c.Logger().Error("property resolution failed", logger.Component(v.component.ID()), logger.Error(err))
		return Property{}, err
	}
	v.property = &p
	return p, nil
}

func unresolvableProperty(c FormComponent) error {
	msg := "possible causes are a typo in the property expression, a nil owner or a model no PropertyResolver understands"
	if m := c.Model(); m != nil {
		return fmt.Errorf("%w from component %s: %s; model: %v", ErrUnresolvableProperty, c.ID(), msg, m)
	}
	return fmt.Errorf("%w from component %s: %s", ErrUnresolvableProperty, c.ID(), msg)
}
