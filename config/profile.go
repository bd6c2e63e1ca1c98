package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named set of variable overrides sitting between built-in
// defaults and the process environment. A profile gives the alternative
// state a name instead of leaving it commented out in a sourced script.
type Profile struct {
	Name      string            `yaml:"name"`
	Overrides map[string]string `yaml:"overrides"`
}

// Built-in profile names.
const (
	ProfileProduction = "production"
	ProfileDebug      = "debug"
)

// BuiltinProfile returns a copy of the named built-in profile.
// "production" is the shipped state; "debug" raises verbosity and pins
// every agent, including the ones that normally run on their own built-in
// model, to the flash model.
func BuiltinProfile(name string) (*Profile, bool) {
	switch name {
	case ProfileProduction:
		return &Profile{
			Name: ProfileProduction,
			Overrides: map[string]string{
				EnvLogLevel: "ERROR",
			},
		}, true
	case ProfileDebug:
		return &Profile{
			Name: ProfileDebug,
			Overrides: map[string]string{
				EnvLogLevel:              "DEBUG",
				EnvTaskAnalyzerModel:     DefaultAgentModel,
				EnvProjectAnalyzerModel:  DefaultAgentModel,
				EnvAdviceGeneratorModel:  DefaultAgentModel,
				EnvPlanningModel:         DefaultAgentModel,
				EnvGoogleSearchModel:     DefaultAgentModel,
				EnvURLContextModel:       DefaultAgentModel,
				EnvProactiveAdvisorModel: DefaultAgentModel,
			},
		}, true
	}
	return nil, false
}

// LoadProfileFile reads a profile from a YAML file. Every override key must
// be a recognized variable name; a typo in a profile file fails the whole
// load rather than silently exporting a variable nothing reads.
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}

	for name := range p.Overrides {
		if !KnownName(name) {
			return nil, &LoadError{Source: path, Err: fmt.Errorf("unknown variable %q", name)}
		}
	}

	return &p, nil
}

// KnownName reports whether name is part of the configuration contract.
// Derived entries are excluded: they are computed, never overridden.
func KnownName(name string) bool {
	_, ok := knownNames[name]
	return ok
}

var knownNames = map[string]struct{}{
	EnvProjectID:             {},
	EnvLocation:              {},
	EnvLogLevel:              {},
	EnvIsLocal:               {},
	EnvReasoningEngineID:     {},
	EnvTaskAnalyzerModel:     {},
	EnvProjectAnalyzerModel:  {},
	EnvAdviceGeneratorModel:  {},
	EnvPlanningModel:         {},
	EnvGoogleSearchModel:     {},
	EnvURLContextModel:       {},
	EnvProactiveAdvisorModel: {},
	EnvEntityManagerModel:    {},
	EnvProjectArchivistModel: {},
	EnvFirestoreDBName:       {},
	EnvStagingBucketName:     {},
}

func resolveProfile(opts Options) (*Profile, error) {
	if opts.ProfileFile != "" {
		return LoadProfileFile(opts.ProfileFile)
	}
	if opts.Profile == "" {
		return nil, nil
	}
	p, ok := BuiltinProfile(opts.Profile)
	if !ok {
		return nil, &LoadError{Source: "profile " + opts.Profile, Err: errors.New("unknown profile")}
	}
	return p, nil
}
