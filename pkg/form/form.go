package form

import (
	"context"
	"fmt"
)

// Form groups fields that are submitted together. Models are only updated
// when every field is valid.
type Form struct {
	fields []*Field
	byName map[string]*Field
}

func New(fields ...*Field) (*Form, error) {
	f := &Form{byName: make(map[string]*Field)}
	if err := f.Add(fields...); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Form) Add(fields ...*Field) error {
	for _, field := range fields {
		if _, ok := f.byName[field.Name()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateField, field.Name())
		}
		f.byName[field.Name()] = field
		f.fields = append(f.fields, field)
	}
	return nil
}

func (f *Form) Field(name string) (*Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

func (f *Form) Fields() []*Field {
	return append([]*Field(nil), f.fields...)
}

// Configure configures every field.
func (f *Form) Configure() error {
	for _, field := range f.fields {
		if err := field.Configure(); err != nil {
			return err
		}
	}
	return nil
}

// SetInput distributes submitted values, typically r.PostForm, to the fields
// by name. Fields without a submitted value get empty input.
func (f *Form) SetInput(values map[string][]string) {
	for _, field := range f.fields {
		field.SetInput(values[field.Name()]...)
	}
}

// Process validates every field and updates the models when all are valid.
func (f *Form) Process(ctx context.Context) (bool, error) {
	valid := true
	for _, field := range f.fields {
		if err := field.Validate(ctx); err != nil {
			return false, err
		}
		valid = valid && field.IsValid()
	}
	if !valid {
		return false, nil
	}

	for _, field := range f.fields {
		if field.model == nil {
			continue
		}
		if err := field.model.Set(field.value); err != nil {
			return false, fmt.Errorf("update model of field %s: %w", field.name, err)
		}
	}
	return true, nil
}

// Errors returns the validation messages keyed by field name.
func (f *Form) Errors() map[string][]string {
	errs := make(map[string][]string)
	for _, field := range f.fields {
		if msgs := field.Errors(); len(msgs) > 0 {
			errs[field.Name()] = msgs
		}
	}
	return errs
}
