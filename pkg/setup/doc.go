// Package setup builds a ready to use validation Configuration from Settings.
//
// Settings are read from the environment with the BEANFORM_ prefix:
//
//	BEANFORM_TAG_NAME               constraint struct tag (validate)
//	BEANFORM_GROUPS_TAG_NAME        groups struct tag (groups)
//	BEANFORM_CACHE_SIZE             constraint metadata cache entries (1024)
//	BEANFORM_MESSAGES_PATH          message catalog file or directory overriding the defaults
//	BEANFORM_DEFAULT_LOCALE         fallback locale (en)
//	BEANFORM_LOG_MISSING_MESSAGES   log lookups missing from the catalog (false)
//	BEANFORM_LOG_LEVEL              debug, info, warn or error (info)
//	BEANFORM_LOG_FORMAT             json or text (json)
//
// Typical startup:
//
//	settings, err := setup.LoadSettings()
//	if err != nil {
//		return err
//	}
//	cfg, err := setup.New(ctx, settings)
package setup
