package config

import (
	"errors"
	"fmt"
)

// ErrConfigLoad is the class every load failure belongs to. Callers match
// it with errors.Is; the concrete cause stays reachable through Unwrap.
var ErrConfigLoad = errors.New("config load failed")

// LoadError reports a failure to read or resolve a configuration source.
// Source names the file, variable, or profile at fault so startup logs
// point at the right thing.
type LoadError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("config load failed: %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *LoadError) Is(target error) bool {
	return target == ErrConfigLoad
}
