package constraint

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultTagName is the struct tag holding constraint declarations.
	DefaultTagName = "validate"
	// DefaultGroupsTagName is the struct tag holding group assignments.
	DefaultGroupsTagName = "groups"
	// DefaultCacheSize is the number of (type, field) metadata entries kept.
	DefaultCacheSize = 512
)

type metadataKey struct {
	typ   reflect.Type
	field string
}

// Engine evaluates struct field constraints declared with struct tags.
type Engine struct {
	validate      *validator.Validate
	tagName       string
	groupsTagName string
	cacheSize     int
	cache         *lru.Cache[metadataKey, []Descriptor]
}

// Option configures an Engine.
type Option func(*Engine)

// WithTagName sets the struct tag constraints are read from.
func WithTagName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.tagName = name
		}
	}
}

// WithGroupsTagName sets the struct tag group assignments are read from.
func WithGroupsTagName(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.groupsTagName = name
		}
	}
}

// WithCacheSize sets the metadata cache capacity.
func WithCacheSize(size int) Option {
	return func(e *Engine) {
		e.cacheSize = size
	}
}

// WithValidate supplies a preconfigured validator instance, e.g. one carrying
// application specific validations. Nil is ignored.
func WithValidate(v *validator.Validate) Option {
	return func(e *Engine) {
		if v != nil {
			e.validate = v
		}
	}
}

// NewEngine creates an Engine. The notblank and notempty validations are
// registered on the underlying validator.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		tagName:       DefaultTagName,
		groupsTagName: DefaultGroupsTagName,
		cacheSize:     DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.cacheSize <= 0 {
		return nil, ErrInvalidCacheSize
	}
	cache, err := lru.New[metadataKey, []Descriptor](e.cacheSize)
	if err != nil {
		return nil, errors.Join(ErrInvalidCacheSize, err)
	}
	e.cache = cache

	if e.validate == nil {
		e.validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if err := e.validate.RegisterValidation(string(KindNotBlank), validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register %s: %w", KindNotBlank, err)
	}
	if err := e.validate.RegisterValidation(string(KindNotEmpty), notEmpty); err != nil {
		return nil, fmt.Errorf("register %s: %w", KindNotEmpty, err)
	}
	return e, nil
}

// ConstraintsForProperty returns the constraints declared on the field path
// of ownerType. Pointer types are dereferenced. The returned slice must not be
// modified.
func (e *Engine) ConstraintsForProperty(ownerType reflect.Type, field string) ([]Descriptor, error) {
	if ownerType == nil {
		return nil, ErrNilOwner
	}
	for ownerType.Kind() == reflect.Pointer {
		ownerType = ownerType.Elem()
	}

	key := metadataKey{typ: ownerType, field: field}
	if descs, ok := e.cache.Get(key); ok {
		return descs, nil
	}

	sf, err := lookupField(ownerType, field)
	if err != nil {
		return nil, err
	}
	descs, err := parseConstraints(field, sf.Type, sf.Tag.Get(e.tagName), sf.Tag.Get(e.groupsTagName))
	if err != nil {
		return nil, err
	}

	e.cache.Add(key, descs)
	return descs, nil
}

// ValidateValue checks value against the constraints of owner's field that
// apply to groups. An empty groups list validates the default group.
func (e *Engine) ValidateValue(owner any, field string, value any, groups ...Group) ([]Violation, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	descs, err := e.ConstraintsForProperty(reflect.TypeOf(owner), field)
	if err != nil {
		return nil, err
	}

	isNil := isNilValue(value)
	isZero := isNil || reflect.ValueOf(value).IsZero()
	var violations []Violation
	for _, d := range descs {
		if !d.AppliesTo(groups...) {
			continue
		}
		if !d.Kind.IsNotNull() && (isNil || (d.OmitEmpty && isZero)) {
			continue
		}
		if err := e.validate.Var(value, d.Tag); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return nil, errors.Join(ErrEvaluation, fmt.Errorf("field %s, constraint %q: %w", field, d.Tag, err))
			}
			violations = append(violations, newViolation(d, value))
		}
	}
	return violations, nil
}

// Validate checks every constrained exported field of owner, recursing into
// nested structs, and returns the violations as a Violations error.
func (e *Engine) Validate(owner any, groups ...Group) error {
	if owner == nil {
		return ErrNilOwner
	}
	v := reflect.ValueOf(owner)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ErrNilOwner
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrNotStruct, v.Type())
	}

	var all Violations
	if err := e.validateStruct(owner, v, "", groups, &all); err != nil {
		return err
	}
	if len(all) == 0 {
		return nil
	}
	return all
}

func (e *Engine) validateStruct(owner any, v reflect.Value, prefix string, groups []Group, all *Violations) error {
	t := v.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		path := sf.Name
		if prefix != "" {
			path = prefix + "." + sf.Name
		}

		fv := v.Field(i)
		if sf.Tag.Get(e.tagName) != "" {
			vs, err := e.ValidateValue(owner, path, fv.Interface(), groups...)
			if err != nil {
				return err
			}
			*all = append(*all, vs...)
		}

		for fv.Kind() == reflect.Pointer && !fv.IsNil() {
			fv = fv.Elem()
		}
		if fv.Kind() == reflect.Struct && fv.Type() != timeType {
			if err := e.validateStruct(owner, fv, path, groups, all); err != nil {
				return err
			}
		}
	}
	return nil
}

func lookupField(t reflect.Type, path string) (reflect.StructField, error) {
	if path == "" {
		return reflect.StructField{}, fmt.Errorf("%w: empty field path on %s", ErrUnknownField, t)
	}

	var sf reflect.StructField
	current := t
	for part := range strings.SplitSeq(path, ".") {
		for current.Kind() == reflect.Pointer {
			current = current.Elem()
		}
		if current.Kind() != reflect.Struct {
			return reflect.StructField{}, fmt.Errorf("%w: %s (resolving %q)", ErrNotStruct, current, path)
		}
		f, ok := current.FieldByName(part)
		if !ok || !f.IsExported() {
			return reflect.StructField{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, t, path)
		}
		sf = f
		current = f.Type
	}
	return sf, nil
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// notEmpty fails nil values and zero-length strings, slices, arrays and maps.
func notEmpty(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return field.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !field.IsNil()
	case reflect.Invalid:
		return false
	}
	return true
}
