package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed config fails its validation rules
	ErrInvalidConfig = errors.New("configuration is invalid")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrMissingEnv is matched by *MissingEnvError
	ErrMissingEnv = errors.New("required environment variables are not set")
)

// MissingEnvError lists the required variables that are unset or blank.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingEnv, strings.Join(e.Vars, ", "))
}

func (e *MissingEnvError) Is(target error) bool { return target == ErrMissingEnv }
