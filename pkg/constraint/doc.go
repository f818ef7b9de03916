// Package constraint is the constraint engine behind the beanvalidation
// integration. It reads constraint metadata from struct tags, partitions
// constraints into validation groups, and evaluates single values against the
// constraints declared on a struct field.
//
// Constraints are declared with the validator tag understood by
// github.com/go-playground/validator/v10. Each comma separated token is one
// constraint; its Kind is the token name (the part before "="):
//
//	type Account struct {
//	    Email string `validate:"required,email,max=120"`
//	    Nick  string `validate:"notblank,min=3" groups:"strict;min:strict,signup"`
//	}
//
// The optional groups tag assigns validation groups. Entries are separated by
// ";". An entry of the form "kind:g1,g2" assigns groups to a single
// constraint, an entry without a colon assigns groups to every constraint of
// the field that is not named explicitly. Constraints without groups belong to
// the default group.
//
// # Group applicability
//
// AppliesTo matches a constraint against requested groups during iteration
// and evaluation: an empty declared set means DefaultGroup, an empty requested
// set means DefaultGroup, and the constraint applies when the two sets
// intersect. IsDefault and Descriptor.InGroup answer the narrower questions
// asked when deriving the required flag.
//
// # Evaluation
//
// Engine.ValidateValue evaluates every applicable constraint separately, so a
// value failing several constraints yields one Violation per constraint in
// declaration order. A nil value only fails the not-null family (required,
// notblank, notempty); every other constraint treats nil as valid. Fields
// tagged omitempty extend that to zero values.
//
// Constraint metadata is cached per owner type and field path in an LRU cache.
// The Engine is safe for concurrent use.
package constraint
