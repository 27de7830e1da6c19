// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files),
// github.com/caarlos0/env/v11 (struct tags) and
// github.com/go-playground/validator/v10 (post-parse `validate` tags):
//
//	type HTTPConfig struct {
//		Addr         string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s" validate:"gt=0"`
//	}
//
//	if err := config.ValidateEnvironment("DATABASE_URL"); err != nil {
//		// *config.MissingEnvError names every unset variable
//	}
//	var cfg HTTPConfig
//	if err := config.Load(&cfg); err != nil {
//		// matches ErrParsingConfig or ErrInvalidConfig
//	}
//
// Load caches one value per configuration type for the lifetime of the
// process; Parse reads the environment afresh on every call. ResetCache and
// LoadEnv are mostly useful in tests.
//
// Environment names the deployment stage (development, staging, production).
package config
