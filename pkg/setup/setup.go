package setup

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/beanform/pkg/beanvalidation"
	"github.com/dmitrymomot/beanform/pkg/constraint"
	"github.com/dmitrymomot/beanform/pkg/i18n"
	"github.com/dmitrymomot/beanform/pkg/logger"
)

//go:embed messages/*.yaml
var defaultMessages embed.FS

type options struct {
	output     io.Writer
	validation []beanvalidation.Option
}

// Option configures New.
type Option func(*options)

// WithLogOutput sets the log destination. Defaults to stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithValidationOptions appends options applied to the validation Context
// after the ones derived from Settings, e.g. extra resolvers or tag modifiers.
func WithValidationOptions(opts ...beanvalidation.Option) Option {
	return func(o *options) { o.validation = append(o.validation, opts...) }
}

// New builds the logger, constraint engine and message catalog described by
// s and returns a Configuration wired with them.
func New(ctx context.Context, s Settings, opts ...Option) (*beanvalidation.Configuration, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	o := &options{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(s.LogLevel)),
		logger.WithFormat(logger.Format(s.LogFormat)),
		logger.WithOutput(o.output),
		logger.WithAttr(slog.String("module", "beanform")),
		logger.WithContextExtractors(localeAttr),
	)

	engine, err := constraint.NewEngine(
		constraint.WithTagName(s.TagName),
		constraint.WithGroupsTagName(s.GroupsTagName),
		constraint.WithCacheSize(s.CacheSize),
	)
	if err != nil {
		return nil, fmt.Errorf("create constraint engine: %w", err)
	}

	catalog, err := i18n.NewTranslator(ctx, messageAdapter(s.MessagesPath),
		i18n.WithDefaultLanguage(s.DefaultLocale),
		i18n.WithMissingTranslationsLogging(s.LogMissingMessages),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("load message catalog: %w", err)
	}

	base := []beanvalidation.Option{
		beanvalidation.WithEngine(engine),
		beanvalidation.WithViolationTranslator(beanvalidation.NewCatalogTranslator(catalog)),
		beanvalidation.WithLogger(log),
	}
	cfg, err := beanvalidation.NewConfiguration(append(base, o.validation...)...)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "validation configured",
		slog.String("tag", s.TagName),
		slog.String("groups_tag", s.GroupsTagName),
		slog.Int("cache_size", s.CacheSize),
		slog.Any("languages", catalog.SupportedLanguages()),
	)
	return cfg, nil
}

func localeAttr(ctx context.Context) (slog.Attr, bool) {
	return slog.String("locale", i18n.GetLocale(ctx)), true
}

// messageAdapter layers the catalog at path, a file or a directory, over the
// embedded defaults.
func messageAdapter(path string) i18n.TranslationAdapter {
	adapters := []i18n.TranslationAdapter{&i18n.FSAdapter{FS: defaultMessages, Dir: "messages"}}
	if path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			adapters = append(adapters, &i18n.FSAdapter{FS: os.DirFS(path), Dir: "."})
		} else {
			adapters = append(adapters, &i18n.FileAdapter{Path: path})
		}
	}
	return &i18n.ChainAdapter{Adapters: adapters}
}
