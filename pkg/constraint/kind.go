package constraint

// Kind identifies a constraint type, e.g. "required", "max" or "email".
type Kind string

// The not-null family. A constraint of one of these kinds makes a field required.
//
// KindRequired is evaluated by go-playground's "required", which fails zero
// values rather than only nil ones: 0 in an int field and false in a bool field
// are reported as missing. Use a pointer field when zero is a valid answer.
const (
	KindRequired Kind = "required"
	KindNotBlank Kind = "notblank"
	KindNotEmpty Kind = "notempty"
)

// Kinds with built-in tag modifiers and default messages.
const (
	KindMin   Kind = "min"
	KindMax   Kind = "max"
	KindLen   Kind = "len"
	KindGTE   Kind = "gte"
	KindLTE   Kind = "lte"
	KindEmail Kind = "email"
)

// IsNotNull reports whether k belongs to the not-null family.
func (k Kind) IsNotNull() bool {
	switch k {
	case KindRequired, KindNotBlank, KindNotEmpty:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }
