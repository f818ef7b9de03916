// Package config loads typed settings from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//   - Load parses the environment into a struct using env field tags and
//     caches the result per type, so the work is done once per process.
//   - MustLoad and MustLoadEnv panic on failure.
//   - ResetCache and ForceReload drop cached values, which is handy in tests.
//
// Usage:
//
//	var s setup.Settings
//	if err := config.Load(&s); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
// Sentinel errors (ErrParsingConfig, ErrConfigNotLoaded, ErrNilPointer,
// ErrLoadingEnvFile) can be compared with errors.Is.
package config
