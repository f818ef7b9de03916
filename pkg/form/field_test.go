package form_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
	"github.com/dmitrymomot/beanform/pkg/constraint"
	"github.com/dmitrymomot/beanform/pkg/form"
)

func newConfiguration(t *testing.T) *beanvalidation.Configuration {
	t.Helper()
	engine, err := constraint.NewEngine()
	require.NoError(t, err)
	cfg, err := beanvalidation.NewConfiguration(beanvalidation.WithEngine(engine))
	require.NoError(t, err)
	return cfg
}

func validatedField(t *testing.T, cfg *beanvalidation.Configuration, name string, model form.Model, opts ...beanvalidation.ValidatorOption) *form.Field {
	t.Helper()
	f := form.NewField(name, model)
	require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg, opts...)))
	require.NoError(t, f.Configure())
	return f
}

func TestField_Identity(t *testing.T) {
	a := form.NewField("email", nil)
	b := form.NewField("email", nil, form.WithLabel("E-mail"))

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "email", a.Label())
	assert.Equal(t, "E-mail", b.Label())
}

func TestField_Add(t *testing.T) {
	cfg := newConfiguration(t)
	v := beanvalidation.NewPropertyValidator(cfg)

	first := form.NewField("email", form.NewPropertyModel(&account{}, "Email"))
	require.NoError(t, first.Add(v))

	second := form.NewField("email", form.NewPropertyModel(&account{}, "Email"))
	err := second.Add(v)
	require.ErrorIs(t, err, beanvalidation.ErrBindingConflict)
}

func TestField_Configure(t *testing.T) {
	cfg := newConfiguration(t)

	t.Run("required from constraints", func(t *testing.T) {
		f := validatedField(t, cfg, "email", form.NewPropertyModel(&account{}, "Email"))
		assert.True(t, f.IsRequired())
	})

	t.Run("optional without not-null constraints", func(t *testing.T) {
		f := validatedField(t, cfg, "bio", form.NewPropertyModel(&account{}, "Bio"))
		assert.False(t, f.IsRequired())
	})

	t.Run("groups decide", func(t *testing.T) {
		f := validatedField(t, cfg, "nick", form.NewPropertyModel(&account{}, "Nick"))
		assert.False(t, f.IsRequired())

		f = validatedField(t, cfg, "nick", form.NewPropertyModel(&account{}, "Nick"), beanvalidation.WithGroups("strict"))
		assert.True(t, f.IsRequired())
	})

	t.Run("nested property through an object model", func(t *testing.T) {
		holder := form.NewObjectModel(&account{})
		f := validatedField(t, cfg, "city", form.NewPropertyModel(holder, "Address.City"))
		assert.True(t, f.IsRequired())
	})

	t.Run("value models cannot be resolved", func(t *testing.T) {
		f := form.NewField("free", form.NewValueModel(""))
		require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg)))

		err := f.Configure()
		require.ErrorIs(t, err, beanvalidation.ErrUnresolvableProperty)
		assert.Contains(t, err.Error(), f.ID())
		assert.Contains(t, err.Error(), "ValueModel:")
	})

	t.Run("explicit property on a value model", func(t *testing.T) {
		f := form.NewField("free", form.NewValueModel(""))
		require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg,
			beanvalidation.WithProperty(beanvalidation.NewProperty(&account{}, "Email")),
		)))
		require.NoError(t, f.Configure())
		assert.True(t, f.IsRequired())
	})
}

func TestField_Tag(t *testing.T) {
	cfg := newConfiguration(t)

	t.Run("constraints shape the tag", func(t *testing.T) {
		f := validatedField(t, cfg, "email", form.NewPropertyModel(&account{}, "Email"))
		tag, err := f.Tag()
		require.NoError(t, err)

		assert.Equal(t, "input", tag.Name)
		assert.Equal(t, f.ID(), tag.Attrs["id"])
		assert.Equal(t, "email", tag.Attrs["name"])
		assert.Equal(t, "email", tag.Attrs["type"])
		assert.Equal(t, "64", tag.Attrs["maxlength"])
		assert.Equal(t, true, tag.Attrs["required"])
	})

	t.Run("numeric constraints do not become lengths", func(t *testing.T) {
		f := validatedField(t, cfg, "age", form.NewPropertyModel(&account{}, "Age"), beanvalidation.WithGroups())
		tag, err := f.Tag()
		require.NoError(t, err)
		assert.False(t, tag.Has("minlength"))
		assert.Equal(t, "text", tag.Attrs["type"])
	})

	t.Run("textarea", func(t *testing.T) {
		f := form.NewField("bio", form.NewPropertyModel(&account{}, "Bio"), form.WithTextarea())
		require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg)))

		tag, err := f.Tag()
		require.NoError(t, err)
		assert.Equal(t, "textarea", tag.Name)
		assert.Equal(t, "140", tag.Attrs["maxlength"])
		assert.False(t, tag.Has("type"))
	})
}

func TestField_Render(t *testing.T) {
	cfg := newConfiguration(t)

	t.Run("input", func(t *testing.T) {
		acc := &account{Email: `a"b@example.com`}
		f := validatedField(t, cfg, "email", form.NewPropertyModel(acc, "Email"))

		var buf bytes.Buffer
		require.NoError(t, f.Render(context.Background(), &buf))
		want := `<input id="` + f.ID() + `" maxlength="64" name="email" required type="email" value="a&#34;b@example.com">`
		assert.Equal(t, want, buf.String())
	})

	t.Run("textarea wraps the value", func(t *testing.T) {
		f := form.NewField("bio", form.NewPropertyModel(&account{}, "Bio"), form.WithTextarea())
		require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg)))
		f.SetInput("fish & chips")

		var buf bytes.Buffer
		require.NoError(t, f.Render(context.Background(), &buf))
		want := `<textarea id="` + f.ID() + `" maxlength="140" name="bio">fish &amp; chips</textarea>`
		assert.Equal(t, want, buf.String())
	})

	t.Run("component with label and errors", func(t *testing.T) {
		f := validatedField(t, cfg, "email", form.NewPropertyModel(&account{}, "Email"))
		f.SetInput("")
		require.NoError(t, f.Validate(context.Background()))

		var buf bytes.Buffer
		require.NoError(t, f.Component().Render(context.Background(), &buf))
		out := buf.String()
		assert.Contains(t, out, `<label for="`+f.ID()+`">email</label>`)
		assert.Contains(t, out, `<ul class="errors"><li>is required</li><li>must be a valid email address</li></ul>`)
	})
}

func TestField_Validate(t *testing.T) {
	cfg := newConfiguration(t)
	ctx := context.Background()

	t.Run("reports every violation", func(t *testing.T) {
		f := validatedField(t, cfg, "email", form.NewPropertyModel(&account{}, "Email"))
		f.SetInput("")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"is required", "must be a valid email address"}, f.Errors())
		assert.False(t, f.IsValid())
	})

	t.Run("errors do not accumulate", func(t *testing.T) {
		f := validatedField(t, cfg, "email", form.NewPropertyModel(&account{}, "Email"))
		f.SetInput("nope")
		require.NoError(t, f.Validate(ctx))
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"must be a valid email address"}, f.Errors())

		f.SetInput("jane@example.com")
		require.NoError(t, f.Validate(ctx))
		assert.True(t, f.IsValid())
	})

	t.Run("converts input to the property type", func(t *testing.T) {
		f := validatedField(t, cfg, "age", form.NewPropertyModel(&account{}, "Age"))
		f.SetInput(" 17 ")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, 17, f.Value())
		assert.Equal(t, []string{"must be greater than or equal to 18"}, f.Errors())
	})

	t.Run("blank numeric input is nil", func(t *testing.T) {
		f := validatedField(t, cfg, "age", form.NewPropertyModel(&account{}, "Age"))
		f.SetInput("")
		require.NoError(t, f.Validate(ctx))
		assert.Nil(t, f.Value())
		assert.True(t, f.IsValid())
	})

	t.Run("empty optional field is valid", func(t *testing.T) {
		f := validatedField(t, cfg, "website", form.NewPropertyModel(&account{}, "Website"))
		assert.False(t, f.IsRequired())

		f.SetInput("")
		require.NoError(t, f.Validate(ctx))
		assert.True(t, f.IsValid())
		assert.Empty(t, f.Errors())

		f.SetInput("not a url")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"failed on the 'url' constraint"}, f.Errors())
	})

	t.Run("conversion failure skips the validators", func(t *testing.T) {
		f := validatedField(t, cfg, "age", form.NewPropertyModel(&account{}, "Age"))
		f.SetInput("abc")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"is not a valid int"}, f.Errors())
	})

	t.Run("collections", func(t *testing.T) {
		f := validatedField(t, cfg, "tags", form.NewPropertyModel(&account{}, "Tags"), beanvalidation.WithGroups("signup"))
		assert.True(t, f.IsRequired())

		f.SetInput("go, templ", "", "slog")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"go", "templ", "slog"}, f.Value())
		assert.True(t, f.IsValid())

		f.SetInput(" ")
		require.NoError(t, f.Validate(ctx))
		assert.Equal(t, []string{"must not be empty"}, f.Errors())
	})

	t.Run("validator failures are returned", func(t *testing.T) {
		f := form.NewField("orphan", form.NewValueModel(""))
		require.NoError(t, f.Add(beanvalidation.NewPropertyValidator(cfg)))
		f.SetInput("x")

		err := f.Validate(ctx)
		require.True(t, errors.Is(err, beanvalidation.ErrUnresolvableProperty))
	})
}

func TestField_Process(t *testing.T) {
	cfg := newConfiguration(t)
	ctx := context.Background()

	t.Run("valid input updates the model", func(t *testing.T) {
		acc := &account{}
		f := validatedField(t, cfg, "city", form.NewPropertyModel(acc, "Address.City"))
		f.SetInput("Berlin")

		ok, err := f.Process(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, acc.Address)
		assert.Equal(t, "Berlin", acc.Address.City)
	})

	t.Run("invalid input leaves the model alone", func(t *testing.T) {
		acc := &account{Email: "old@example.com"}
		f := validatedField(t, cfg, "email", form.NewPropertyModel(acc, "Email"))
		f.SetInput("broken")

		ok, err := f.Process(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "old@example.com", acc.Email)
	})

	t.Run("pointer fields", func(t *testing.T) {
		acc := &account{}
		f := form.NewField("score", form.NewPropertyModel(acc, "Score"))
		f.SetInput("9.5")

		ok, err := f.Process(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NotNil(t, acc.Score)
		assert.InDelta(t, 9.5, *acc.Score, 0.0001)
	})
}
