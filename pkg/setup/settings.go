package setup

import (
	"fmt"

	"github.com/dmitrymomot/beanform/pkg/config"
	"github.com/dmitrymomot/beanform/pkg/logger"
)

// Settings configures the validation stack.
type Settings struct {
	TagName            string `env:"BEANFORM_TAG_NAME" envDefault:"validate"`
	GroupsTagName      string `env:"BEANFORM_GROUPS_TAG_NAME" envDefault:"groups"`
	CacheSize          int    `env:"BEANFORM_CACHE_SIZE" envDefault:"1024"`
	MessagesPath       string `env:"BEANFORM_MESSAGES_PATH"`
	DefaultLocale      string `env:"BEANFORM_DEFAULT_LOCALE" envDefault:"en"`
	LogMissingMessages bool   `env:"BEANFORM_LOG_MISSING_MESSAGES" envDefault:"false"`
	LogLevel           string `env:"BEANFORM_LOG_LEVEL" envDefault:"info"`
	LogFormat          string `env:"BEANFORM_LOG_FORMAT" envDefault:"json"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks values the environment parser cannot.
func (s Settings) Validate() error {
	switch {
	case s.TagName == "":
		return fmt.Errorf("%w: empty tag name", ErrInvalidSettings)
	case s.GroupsTagName == "":
		return fmt.Errorf("%w: empty groups tag name", ErrInvalidSettings)
	case s.TagName == s.GroupsTagName:
		return fmt.Errorf("%w: tag name and groups tag name are both %q", ErrInvalidSettings, s.TagName)
	case s.CacheSize <= 0:
		return fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidSettings, s.CacheSize)
	}
	switch logger.Format(s.LogFormat) {
	case logger.FormatJSON, logger.FormatText:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidSettings, s.LogFormat)
	}
	return nil
}
