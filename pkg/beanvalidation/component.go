package beanvalidation

// Component is a node of the host's component tree.
type Component interface {
	// ID identifies the component in diagnostics.
	ID() string
}

// FormComponent is a component bound to a value.
type FormComponent interface {
	Component
	SetRequired(required bool)
	IsRequired() bool
	// Model returns the model holding the component's value, or nil.
	Model() any
}

// Validatable carries a candidate value and collects error messages for it.
type Validatable interface {
	Value() any
	Error(message string)
}

// ObjectModel is a model wrapping a single object.
type ObjectModel interface {
	Object() any
}

// PropertyModel is a model reading its value through a field path of a target.
type PropertyModel interface {
	Target() any
	PropertyExpression() string
}
