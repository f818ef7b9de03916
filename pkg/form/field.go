package form

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
)

// Behavior is attached to a single field.
type Behavior interface {
	Bind(c beanvalidation.Component) error
}

// ConfigureListener takes part in Field.Configure.
type ConfigureListener interface {
	OnConfigure(c beanvalidation.Component) error
}

// TagListener takes part in Field.Tag.
type TagListener interface {
	OnComponentTag(c beanvalidation.Component, tag *beanvalidation.Tag) error
}

// Validator takes part in Field.Validate.
type Validator interface {
	Validate(ctx context.Context, v beanvalidation.Validatable) error
}

// Field is a single form input backed by a Model.
type Field struct {
	id        string
	name      string
	label     string
	tagName   string
	inputType string
	model     Model
	required  bool
	behaviors []Behavior

	input    []string
	hasInput bool
	value    any
	errors   []string
}

// FieldOption configures a Field.
type FieldOption func(*Field)

func WithLabel(label string) FieldOption {
	return func(f *Field) { f.label = label }
}

// WithTextarea renders the field as a textarea.
func WithTextarea() FieldOption {
	return func(f *Field) { f.tagName = "textarea" }
}

// WithInputType sets the type attribute of the input tag. Defaults to "text".
func WithInputType(typ string) FieldOption {
	return func(f *Field) { f.inputType = typ }
}

// NewField creates a field named name reading from and writing to model.
func NewField(name string, model Model, opts ...FieldOption) *Field {
	f := &Field{
		id:        uuid.NewString(),
		name:      name,
		tagName:   "input",
		inputType: "text",
		model:     model,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) ID() string { return f.id }

func (f *Field) Name() string { return f.name }

func (f *Field) Label() string {
	if f.label == "" {
		return f.name
	}
	return f.label
}

func (f *Field) Model() any { return f.model }

func (f *Field) SetRequired(required bool) { f.required = required }

func (f *Field) IsRequired() bool { return f.required }

// Add binds behaviors to the field.
func (f *Field) Add(behaviors ...Behavior) error {
	for _, b := range behaviors {
		if err := b.Bind(f); err != nil {
			return fmt.Errorf("bind %T to field %s: %w", b, f.name, err)
		}
		f.behaviors = append(f.behaviors, b)
	}
	return nil
}

// Configure runs the configure step of every behavior. Hosts call it before
// each render.
func (f *Field) Configure() error {
	for _, b := range f.behaviors {
		if l, ok := b.(ConfigureListener); ok {
			if err := l.OnConfigure(f); err != nil {
				return fmt.Errorf("configure field %s: %w", f.name, err)
			}
		}
	}
	return nil
}

// Tag builds the markup tag of the field and lets behaviors modify it.
func (f *Field) Tag() (*beanvalidation.Tag, error) {
	tag := beanvalidation.NewTag(f.tagName)
	tag.Put("id", f.id)
	tag.Put("name", f.name)
	if f.tagName == "input" {
		tag.Put("type", f.inputType)
	}
	if f.required {
		tag.Put("required", true)
	}

	for _, b := range f.behaviors {
		if l, ok := b.(TagListener); ok {
			if err := l.OnComponentTag(f, tag); err != nil {
				return nil, fmt.Errorf("tag field %s: %w", f.name, err)
			}
		}
	}
	return tag, nil
}

// SetInput stores the raw user input.
func (f *Field) SetInput(values ...string) {
	f.input = slices.Clone(values)
	f.hasInput = true
}

// Input returns the raw input as displayed in the field: the user input when
// set, otherwise the model value.
func (f *Field) Input() string {
	if f.hasInput {
		return strings.Join(f.input, ",")
	}
	if f.model == nil {
		return ""
	}
	v, err := f.model.Get()
	if err != nil || v == nil {
		return ""
	}
	if s, ok := v.([]string); ok {
		return strings.Join(s, ",")
	}
	return fmt.Sprint(v)
}

// Value returns the converted input. It is set by Validate.
func (f *Field) Value() any { return f.value }

// Error reports a validation message.
func (f *Field) Error(message string) {
	f.errors = append(f.errors, message)
}

func (f *Field) Errors() []string { return slices.Clone(f.errors) }

func (f *Field) IsValid() bool { return len(f.errors) == 0 }

// Validate converts the input and runs the validators. Conversion failures
// are reported as validation messages and skip the validators. Returned
// errors come from the validators themselves.
func (f *Field) Validate(ctx context.Context) error {
	f.errors = f.errors[:0]
	f.value = nil

	typ := f.modelType()
	value, err := convertInput(typ, f.input)
	if err != nil {
		f.Error(fmt.Sprintf("is not a valid %s", typ))
		return nil
	}
	f.value = value

	for _, b := range f.behaviors {
		if v, ok := b.(Validator); ok {
			if err := v.Validate(ctx, f); err != nil {
				return fmt.Errorf("validate field %s: %w", f.name, err)
			}
		}
	}
	return nil
}

// Process validates the field and, when valid, writes the converted value to
// the model.
func (f *Field) Process(ctx context.Context) (bool, error) {
	if err := f.Validate(ctx); err != nil {
		return false, err
	}
	if !f.IsValid() {
		return false, nil
	}
	if f.model != nil {
		if err := f.model.Set(f.value); err != nil {
			return false, fmt.Errorf("update model of field %s: %w", f.name, err)
		}
	}
	return true, nil
}

func (f *Field) modelType() reflect.Type {
	if f.model == nil {
		return nil
	}
	return f.model.Type()
}
