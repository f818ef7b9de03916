package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested or negotiable.
const DefaultLanguage = "en"

// Translator looks up localized messages in a catalog.
type Translator struct {
	catalog        map[string]map[string]any
	defaultLang    string
	langs          []string
	matcher        language.Matcher
	missingLogMode bool
	logger         *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language served when negotiation fails.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging controls whether missing messages are logged.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) {
		t.missingLogMode = enabled
	}
}

// NewTranslator loads the catalog from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range catalog {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilLanguageCatalog, lang)
		}
	}
	t.catalog = catalog
	t.buildMatcher()

	t.logger.InfoContext(ctx, "message catalog loaded", slog.Any("languages", t.langs))
	return t, nil
}

func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.catalog))
	for lang := range t.catalog {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	// The default language goes first so the matcher falls back to it.
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			t.logger.Warn("catalog language is not a valid BCP 47 tag", slog.String("lang", lang))
			continue
		}
		t.langs = append(t.langs, lang)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// SupportedLanguages returns the catalog languages, default language first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match returns the catalog language serving lang.
func (t *Translator) Match(lang string) string {
	if _, ok := t.catalog[lang]; ok {
		return lang
	}
	if t.matcher == nil {
		return t.defaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether lang has a message for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.message(lang, key)
	return ok
}

// Lookup returns the message for key in lang with args substituted. args are
// key/value pairs; an odd trailing argument is ignored.
func (t *Translator) Lookup(lang, key string, args ...string) (string, bool) {
	msg, ok := t.message(lang, key)
	if !ok {
		return "", false
	}
	return substitute(msg, args), true
}

// T returns the message for key in lang, or key itself when missing.
func (t *Translator) T(lang, key string, args ...string) string {
	if msg, ok := t.Lookup(lang, key, args...); ok {
		return msg
	}
	if t.missingLogMode {
		t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	return substitute(key, args)
}

// Tc is T with the language taken from ctx and negotiated.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(t.Match(GetLocale(ctx)), key, args...)
}

// LogMissing records a missing message when missing message logging is on.
func (t *Translator) LogMissing(ctx context.Context, lang, key string) {
	if t.missingLogMode {
		t.logger.WarnContext(ctx, "translation not found", slog.String("lang", lang), slog.String("key", key))
	}
}

func (t *Translator) message(lang, key string) (string, bool) {
	messages, ok := t.catalog[lang]
	if !ok {
		return "", false
	}
	val, ok := lookupPath(messages, key)
	if !ok {
		return "", false
	}
	msg, ok := val.(string)
	return msg, ok
}

func lookupPath(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
