package beanvalidation

// PropertyResolver derives a Property from a form component.
type PropertyResolver interface {
	ResolveProperty(c FormComponent) (Property, bool)
}

// PropertyResolverFunc adapts a function to PropertyResolver.
type PropertyResolverFunc func(c FormComponent) (Property, bool)

func (f PropertyResolverFunc) ResolveProperty(c FormComponent) (Property, bool) {
	return f(c)
}

// DefaultPropertyResolver resolves components whose model is a PropertyModel.
// A target that is itself an ObjectModel is unwrapped first.
type DefaultPropertyResolver struct{}

func (DefaultPropertyResolver) ResolveProperty(c FormComponent) (Property, bool) {
	pm, ok := c.Model().(PropertyModel)
	if !ok {
		return Property{}, false
	}

	expr := pm.PropertyExpression()
	target := pm.Target()
	if om, ok := target.(ObjectModel); ok {
		target = om.Object()
	}
	if target == nil || expr == "" {
		return Property{}, false
	}
	return NewProperty(target, expr), true
}
