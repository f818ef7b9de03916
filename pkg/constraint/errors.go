package constraint

import "errors"

var (
	// ErrNilOwner is returned when a value is validated without an owning object.
	ErrNilOwner = errors.New("constraint: owner is nil")

	// ErrNotStruct is returned when constraints are requested for a non-struct type.
	ErrNotStruct = errors.New("constraint: owner type is not a struct")

	// ErrUnknownField is returned when a field path does not name an exported struct field.
	ErrUnknownField = errors.New("constraint: unknown field")

	// ErrInvalidTag is returned when a validate or groups tag cannot be interpreted.
	ErrInvalidTag = errors.New("constraint: invalid tag")

	// ErrEvaluation is returned when the underlying validator fails for reasons
	// other than a constraint violation.
	ErrEvaluation = errors.New("constraint: evaluation failed")

	// ErrInvalidCacheSize is returned by NewEngine for a non-positive cache size.
	ErrInvalidCacheSize = errors.New("constraint: cache size must be positive")
)
