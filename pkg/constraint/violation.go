package constraint

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Target kinds used to select type specific messages.
const (
	TargetString     = "string"
	TargetNumber     = "number"
	TargetBool       = "bool"
	TargetCollection = "collection"
	TargetTime       = "time"
	TargetObject     = "object"
)

// Violation is a failure of a value against one constraint.
type Violation struct {
	Field   string
	Kind    Kind
	Param   string
	Value   any
	Target  string
	Message string
}

// Violations is a collection of violations that satisfies the error interface.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has at least one violation.
func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the default messages reported for field.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the fields with violations in first-seen order.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

// ExtractViolations returns the Violations wrapped by err, if any.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

var defaultMessages = map[Kind]string{
	KindRequired: "is required",
	KindNotBlank: "must not be blank",
	KindNotEmpty: "must not be empty",
	KindMin:      "must be at least %s",
	KindMax:      "must be at most %s",
	KindLen:      "must have length %s",
	KindGTE:      "must be greater than or equal to %s",
	KindLTE:      "must be less than or equal to %s",
	KindEmail:    "must be a valid email address",
}

func newViolation(d Descriptor, value any) Violation {
	target := targetOf(d.Type)
	return Violation{
		Field:   d.Field,
		Kind:    d.Kind,
		Param:   d.Param,
		Value:   value,
		Target:  target,
		Message: defaultMessage(d, target),
	}
}

func defaultMessage(d Descriptor, target string) string {
	tmpl, ok := defaultMessages[d.Kind]
	if !ok {
		return fmt.Sprintf("failed on the '%s' constraint", d.Tag)
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl
	}
	msg := fmt.Sprintf(tmpl, d.Param)
	switch {
	case target == TargetString && (d.Kind == KindMin || d.Kind == KindMax || d.Kind == KindLen):
		msg += " characters long"
	case target == TargetCollection && (d.Kind == KindMin || d.Kind == KindMax || d.Kind == KindLen):
		msg += " items"
	}
	return msg
}

var timeType = reflect.TypeOf(time.Time{})

func targetOf(t reflect.Type) string {
	if t == nil {
		return TargetObject
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return TargetTime
	}
	switch t.Kind() {
	case reflect.String:
		return TargetString
	case reflect.Bool:
		return TargetBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return TargetNumber
	case reflect.Slice, reflect.Array, reflect.Map:
		return TargetCollection
	}
	return TargetObject
}
