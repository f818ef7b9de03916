// Package form hosts constraint validated form fields.
//
// A Field owns a model, raw user input, a required flag and a list of
// behaviors. The host drives the lifecycle:
//
//	field := form.NewField("email", form.NewPropertyModel(&signup, "Email"))
//	if err := field.Add(beanvalidation.NewPropertyValidator(cfg)); err != nil {
//		return err
//	}
//	if err := field.Configure(); err != nil { // derives the required flag
//		return err
//	}
//	field.SetInput(r.PostForm["email"]...)
//	ok, err := field.Process(ctx) // converts, validates and updates the model
//
// Behaviors are attached with Add. A behavior implementing
// ConfigureListener, TagListener or Validator takes part in the matching
// lifecycle step. *beanvalidation.PropertyValidator implements all three.
//
// Field renders its input tag as a templ component.
package form
