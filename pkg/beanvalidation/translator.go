package beanvalidation

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/beanform/pkg/constraint"
	"github.com/dmitrymomot/beanform/pkg/i18n"
)

// ViolationTranslator converts a violation into a user facing message.
type ViolationTranslator interface {
	Convert(ctx context.Context, v constraint.Violation) string
}

// ViolationTranslatorFunc adapts a function to ViolationTranslator.
type ViolationTranslatorFunc func(ctx context.Context, v constraint.Violation) string

func (f ViolationTranslatorFunc) Convert(ctx context.Context, v constraint.Violation) string {
	return f(ctx, v)
}

// MessageViolationTranslator returns the engine's default message.
type MessageViolationTranslator struct{}

func (MessageViolationTranslator) Convert(_ context.Context, v constraint.Violation) string {
	return v.Message
}

// CatalogTranslator looks messages up in an i18n catalog using the locale
// stored in the context. For a violation of kind max on a string field it
// tries "validation.max.string", "validation.max.default" and "validation.max",
// and falls back to the engine's default message. Messages may use the %{field}, %{param} and
// %{value} placeholders.
type CatalogTranslator struct {
	translator *i18n.Translator
	prefix     string
}

// NewCatalogTranslator returns a CatalogTranslator over t with the
// "validation" key prefix.
func NewCatalogTranslator(t *i18n.Translator) *CatalogTranslator {
	return &CatalogTranslator{translator: t, prefix: "validation"}
}

func (c *CatalogTranslator) Convert(ctx context.Context, v constraint.Violation) string {
	lang := c.translator.Match(i18n.GetLocale(ctx))
	base := c.prefix + "." + string(v.Kind)
	args := []string{
		"field", v.Field,
		"param", v.Param,
		"value", valueString(v.Value),
	}

	for _, key := range []string{base + "." + v.Target, base + ".default", base} {
		if msg, ok := c.translator.Lookup(lang, key, args...); ok {
			return msg
		}
	}
	c.translator.LogMissing(ctx, lang, base)
	return v.Message
}

func valueString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
