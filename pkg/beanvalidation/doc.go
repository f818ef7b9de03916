// Package beanvalidation attaches constraint based validation to form fields.
//
// A PropertyValidator is bound to exactly one form component. It works on a
// Property, the pair of an owning object and a field path, which is either
// supplied explicitly or resolved lazily from the component through the
// resolver chain of the active Context. Once resolved, the property is cached
// for the lifetime of the validator.
//
// The validator takes part in three phases of the host component's lifecycle:
//
//   - OnConfigure marks the component required the first time it runs, when a
//     not-null family constraint (required, notblank, notempty) applies to the
//     validator's groups. The flag is only ever promoted, never cleared.
//   - OnComponentTag lets the TagModifiers registered for the property's
//     constraint kinds mutate the emitted markup tag, e.g. to add maxlength.
//   - Validate runs the constraint engine against the candidate value and
//     reports every violation, converted by the ViolationTranslator, to the
//     component.
//
// # Configuration
//
// A Configuration is created once at startup and injected into validators:
//
//	engine, err := constraint.NewEngine()
//	if err != nil {
//	    return err
//	}
//	cfg, err := beanvalidation.NewConfiguration(
//	    beanvalidation.WithEngine(engine),
//	    beanvalidation.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	v := beanvalidation.NewPropertyValidator(cfg, beanvalidation.WithGroups("signup"))
//
// The Context held by a Configuration is immutable. Reconfigure replaces it as
// a whole, so concurrent readers never need a lock.
//
// # Errors
//
// Binding and property resolution failures are programmer errors and are
// returned as ErrBindingConflict and ErrUnresolvableProperty. Constraint
// violations are data errors: they are reported to the Validatable and never
// returned.
//
// A PropertyValidator is confined to the request that renders or validates its
// component and is not safe for concurrent use.
package beanvalidation
