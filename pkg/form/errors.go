package form

import "errors"

var (
	ErrNilTarget      = errors.New("form: model target is nil")
	ErrInvalidPath    = errors.New("form: invalid property path")
	ErrNotAssignable  = errors.New("form: value is not assignable to the property")
	ErrConversion     = errors.New("form: input cannot be converted")
	ErrUnsupported    = errors.New("form: unsupported property type")
	ErrDuplicateField = errors.New("form: duplicate field name")
)
