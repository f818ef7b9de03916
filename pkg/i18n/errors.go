package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("i18n: adapter is nil")
	ErrEmptyLanguageCode  = errors.New("i18n: empty language code")
	ErrNilLanguageCatalog = errors.New("i18n: nil catalog for language")

	ErrFailedToParseJSON = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrUnsupportedFormat = errors.New("i18n: unsupported catalog format")

	ErrLoadingCancelled = errors.New("i18n: loading catalog cancelled")
	ErrFailedToReadFile = errors.New("i18n: failed to read catalog file")
	ErrFailedToReadDir  = errors.New("i18n: failed to read catalog directory")
	ErrNoCatalogFiles   = errors.New("i18n: no catalog files found")
)
