package form

import (
	"fmt"
	"reflect"
	"strings"
)

// Model gives a field read and write access to its value.
type Model interface {
	Get() (any, error)
	Set(v any) error
	// Type is the type of the value, or nil when unknown.
	Type() reflect.Type
}

// ObjectModel holds the object a PropertyModel reads from. Swapping the
// object retargets every property model built on it.
type ObjectModel struct {
	object any
}

func NewObjectModel(object any) *ObjectModel {
	return &ObjectModel{object: object}
}

func (m *ObjectModel) Object() any { return m.object }

func (m *ObjectModel) SetObject(object any) { m.object = object }

func (m *ObjectModel) String() string {
	return fmt.Sprintf("ObjectModel:%T", m.object)
}

// PropertyModel reads and writes a field of a struct addressed by a dotted Go
// field path such as "Address.City". The target is either a struct pointer
// or an *ObjectModel holding one. Nil pointers met on the path read as nil
// and are allocated on write.
type PropertyModel struct {
	target any
	expr   string
}

func NewPropertyModel(target any, expr string) *PropertyModel {
	return &PropertyModel{target: target, expr: expr}
}

func (m *PropertyModel) Target() any { return m.target }

func (m *PropertyModel) PropertyExpression() string { return m.expr }

func (m *PropertyModel) String() string {
	return fmt.Sprintf("PropertyModel:%s:%T", m.expr, m.object())
}

func (m *PropertyModel) object() any {
	if om, ok := m.target.(*ObjectModel); ok {
		return om.Object()
	}
	return m.target
}

func (m *PropertyModel) Type() reflect.Type {
	t := reflect.TypeOf(m.object())
	if t == nil || m.expr == "" {
		return nil
	}
	for name := range strings.SplitSeq(m.expr, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil
		}
		f, ok := t.FieldByName(name)
		if !ok || !f.IsExported() {
			return nil
		}
		t = f.Type
	}
	return t
}

func (m *PropertyModel) Get() (any, error) {
	v, err := m.walk(false)
	if err != nil || !v.IsValid() {
		return nil, err
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, nil
	}
	return v.Interface(), nil
}

func (m *PropertyModel) Set(value any) error {
	v, err := m.walk(true)
	if err != nil {
		return err
	}
	if value == nil {
		v.SetZero()
		return nil
	}
	rv := reflect.ValueOf(value)
	switch {
	case rv.Type().AssignableTo(v.Type()):
		v.Set(rv)
	case v.Kind() == reflect.Pointer && rv.Type().AssignableTo(v.Type().Elem()):
		ptr := reflect.New(v.Type().Elem())
		ptr.Elem().Set(rv)
		v.Set(ptr)
	case rv.Type().ConvertibleTo(v.Type()) && rv.Kind() == v.Kind():
		v.Set(rv.Convert(v.Type()))
	default:
		return fmt.Errorf("%w: %T to %s.%s (%s)", ErrNotAssignable, value, reflect.TypeOf(m.object()), m.expr, v.Type())
	}
	return nil
}

// walk returns the addressed field. When alloc is false a nil pointer on the
// path yields an invalid value.
func (m *PropertyModel) walk(alloc bool) (reflect.Value, error) {
	obj := m.object()
	if obj == nil {
		return reflect.Value{}, ErrNilTarget
	}
	if m.expr == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty expression", ErrInvalidPath)
	}

	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil struct pointer, got %T", ErrNilTarget, obj)
	}

	parts := strings.Split(m.expr, ".")
	for i, name := range parts {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc {
					return reflect.Value{}, nil
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("%w: %q is not a struct in %q", ErrInvalidPath, strings.Join(parts[:i], "."), m.expr)
		}
		f, ok := v.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return reflect.Value{}, fmt.Errorf("%w: %s has no exported field %q", ErrInvalidPath, v.Type(), name)
		}
		v = v.FieldByIndex(f.Index)
	}
	return v, nil
}

// ValueModel holds a detached value.
type ValueModel struct {
	value any
	typ   reflect.Type
}

// NewValueModel returns a model holding value. Its type is the type of value.
func NewValueModel(value any) *ValueModel {
	return &ValueModel{value: value, typ: reflect.TypeOf(value)}
}

func (m *ValueModel) Get() (any, error) { return m.value, nil }

func (m *ValueModel) Set(v any) error {
	m.value = v
	return nil
}

func (m *ValueModel) Type() reflect.Type { return m.typ }

func (m *ValueModel) String() string {
	return fmt.Sprintf("ValueModel:%v", m.value)
}
