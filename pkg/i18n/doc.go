// Package i18n holds localized message catalogs.
//
// A Translator loads a catalog through a TranslationAdapter (an in-memory map,
// a single file, or a directory of an fs.FS such as an embed.FS) and looks up
// messages by dot separated keys. Catalog files are keyed by language at the
// top level:
//
//	en:
//	  validation:
//	    required: "%{field} is required"
//	    max:
//	      string: "%{field} must be at most %{param} characters long"
//	      default: "%{field} must be at most %{param}"
//
// Messages use named placeholders in the form %{name}; arguments are passed as
// key/value pairs.
//
// The requested language is negotiated against the catalog with
// golang.org/x/text/language, so "en-GB" is served from "en" when no exact
// entry exists. The locale of a request travels in the context (SetLocale,
// GetLocale).
//
// A Translator is immutable after NewTranslator returns and safe for
// concurrent use.
package i18n
