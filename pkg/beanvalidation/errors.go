package beanvalidation

import "errors"

var (
	// ErrBindingConflict is returned when a validator is bound twice or to a
	// component that does not hold a value.
	ErrBindingConflict = errors.New("beanvalidation: binding conflict")

	// ErrNotBound is returned when a lifecycle hook runs before Bind.
	ErrNotBound = errors.New("beanvalidation: validator is not bound to a component")

	// ErrUnresolvableProperty is returned when no property was supplied and no
	// resolver could derive one from the component.
	ErrUnresolvableProperty = errors.New("beanvalidation: could not resolve property")

	// ErrNoEngine is returned when a Context is created without a constraint engine.
	ErrNoEngine = errors.New("beanvalidation: constraint engine is not configured")

	// ErrNilConfiguration is returned when a validator runs without a Configuration.
	ErrNilConfiguration = errors.New("beanvalidation: configuration is nil")
)
