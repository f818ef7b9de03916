package constraint

import (
	"fmt"
	"reflect"
	"strings"
)

// Tokens that steer go-playground/validator traversal instead of declaring a
// constraint. They cannot be evaluated against a single value.
var unsupportedTokens = map[string]bool{
	"dive":    true,
	"keys":    true,
	"endkeys": true,
}

const omitEmptyToken = "omitempty"

func parseConstraints(field string, typ reflect.Type, validateTag, groupsTag string) ([]Descriptor, error) {
	validateTag = strings.TrimSpace(validateTag)
	if validateTag == "" || validateTag == "-" {
		return nil, nil
	}

	var descs []Descriptor
	omitEmpty := false
	for token := range strings.SplitSeq(validateTag, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if token == omitEmptyToken {
			omitEmpty = true
			continue
		}
		if unsupportedTokens[token] {
			return nil, fmt.Errorf("%w: %q on field %s is not supported", ErrInvalidTag, token, field)
		}

		kind, param := token, ""
		if !strings.Contains(token, "|") {
			if name, p, ok := strings.Cut(token, "="); ok {
				kind, param = name, p
			}
		}
		descs = append(descs, Descriptor{
			Kind:  Kind(kind),
			Param: param,
			Tag:   token,
			Field: field,
			Type:  typ,
		})
	}

	for i := range descs {
		descs[i].OmitEmpty = omitEmpty
	}

	if err := assignGroups(descs, field, groupsTag); err != nil {
		return nil, err
	}
	return descs, nil
}

func assignGroups(descs []Descriptor, field, groupsTag string) error {
	groupsTag = strings.TrimSpace(groupsTag)
	if groupsTag == "" {
		return nil
	}

	var fieldWide []Group
	perKind := make(map[Kind][]Group)
	for entry := range strings.SplitSeq(groupsTag, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		kind, list, scoped := strings.Cut(entry, ":")
		if !scoped {
			fieldWide = append(fieldWide, parseGroups(entry)...)
			continue
		}
		kind = strings.TrimSpace(kind)
		if kind == "" {
			return fmt.Errorf("%w: empty constraint name in groups tag of field %s", ErrInvalidTag, field)
		}
		perKind[Kind(kind)] = append(perKind[Kind(kind)], parseGroups(list)...)
	}

	for kind := range perKind {
		if !hasKind(descs, kind) {
			return fmt.Errorf("%w: groups tag of field %s names undeclared constraint %q", ErrInvalidTag, field, kind)
		}
	}

	for i := range descs {
		if groups, ok := perKind[descs[i].Kind]; ok {
			descs[i].Groups = groups
			continue
		}
		if len(fieldWide) > 0 {
			descs[i].Groups = append([]Group(nil), fieldWide...)
		}
	}
	return nil
}

func parseGroups(list string) []Group {
	var groups []Group
	for name := range strings.SplitSeq(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			groups = append(groups, Group(name))
		}
	}
	return groups
}

func hasKind(descs []Descriptor, kind Kind) bool {
	for _, d := range descs {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
