package form

import (
	"context"
	"io"
	"maps"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
)

// Render writes the field's tag. It makes *Field a templ.Component, so it can
// be used directly inside templ templates: @field.
func (f *Field) Render(ctx context.Context, w io.Writer) error {
	tag, err := f.Tag()
	if err != nil {
		return err
	}
	return renderTag(ctx, w, tag, f.Input())
}

// Component returns the field with its label and validation messages.
func (f *Field) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<label for="`)
		b.WriteString(templ.EscapeString(f.id))
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(f.Label()))
		b.WriteString(`</label>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := f.Render(ctx, w); err != nil {
			return err
		}

		if len(f.errors) == 0 {
			return nil
		}
		b.Reset()
		b.WriteString(`<ul class="errors">`)
		for _, msg := range f.errors {
			b.WriteString(`<li>`)
			b.WriteString(templ.EscapeString(msg))
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// renderTag writes tag with its attributes sorted by name. Inputs carry value
// as an attribute; other tags wrap it.
func renderTag(ctx context.Context, w io.Writer, tag *beanvalidation.Tag, value string) error {
	attrs := tag.Attrs
	if tag.Name == "input" && value != "" {
		attrs = maps.Clone(tag.Attrs)
		attrs["value"] = value
	}

	if _, err := io.WriteString(w, "<"+tag.Name); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
		return err
	}
	if tag.Name == "input" {
		_, err := io.WriteString(w, ">")
		return err
	}
	_, err := io.WriteString(w, ">"+templ.EscapeString(value)+"</"+tag.Name+">")
	return err
}
