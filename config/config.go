package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable names recognized by the loader. These form the
// configuration contract with the deployed agents: the names are fixed.
const (
	EnvProjectID         = "PROJECT_ID"
	EnvLocation          = "LOCATION"
	EnvLogLevel          = "LOG_LEVEL"
	EnvIsLocal           = "IS_LOCAL"
	EnvReasoningEngineID = "PROJECT_LIBRARIAN_REASONING_ENGINE_ID"

	EnvTaskAnalyzerModel     = "TASK_ANALYZER_AGENT_MODEL"
	EnvProjectAnalyzerModel  = "PROJECT_ANALYZER_AGENT_MODEL"
	EnvAdviceGeneratorModel  = "ADVICE_GENERATOR_AGENT_MODEL"
	EnvPlanningModel         = "PLANNING_AGENT_MODEL"
	EnvGoogleSearchModel     = "GOOGLE_SEARCH_AGENT_MODEL"
	EnvURLContextModel       = "URL_CONTEXT_AGENT_MODEL"
	EnvProactiveAdvisorModel = "PROACTIVE_ADVISOR_MODEL"
	EnvEntityManagerModel    = "ENTITY_MANAGER_MODEL"
	EnvProjectArchivistModel = "PROJECT_ARCHIVIST_AGENT_MODEL"

	EnvFirestoreDBName   = "FIRESTORE_DB_NAME"
	EnvStagingBucketName = "STAGING_BUCKET_NAME"
)

// Derived entries emitted alongside the configured ones. The agent runtime
// (ADK on Vertex AI) reads these directly and they are never set by hand.
const (
	EnvGoogleCloudProject  = "GOOGLE_CLOUD_PROJECT"
	EnvGoogleCloudLocation = "GOOGLE_CLOUD_LOCATION"
	EnvGenAIUseVertexAI    = "GOOGLE_GENAI_USE_VERTEXAI"
	EnvOtelSDKDisabled     = "OTEL_SDK_DISABLED"
)

// Defaults for the active entries.
const (
	DefaultProjectID         = "d001-000-chiel-dev"
	DefaultLocation          = "us-central1"
	DefaultLogLevel          = "ERROR"
	DefaultReasoningEngineID = "4566541170502533120"
	DefaultAgentModel        = "gemini-2.5-flash"
	DefaultFirestoreDBName   = "(default)"
	DefaultStagingBucket     = "project-librarian-engine-staging-d001-000-chiel-dev"
)

// Config represents the complete resolved configuration. Build it once at
// startup with Load and pass it down; components should not read ambient
// environment variables themselves.
type Config struct {
	Project       ProjectConfig
	Agents        AgentsConfig
	Firestore     FirestoreConfig
	Deploy        DeployConfig
	Observability ObservabilityConfig
}

// ProjectConfig identifies the cloud project and the deployed reasoning
// engine instance.
type ProjectConfig struct {
	ProjectID string `validate:"required"`
	Location  string `validate:"required"`
	IsLocal   bool
	// ReasoningEngineID is the numeric resource ID, kept as a string: it
	// is only ever interpolated into resource names.
	ReasoningEngineID string `validate:"omitempty,number"`
}

// AgentsConfig holds per-agent model names. EntityManager and
// ProjectArchivist ship with a default; the rest stay empty until enabled
// through the environment or a profile, in which case the consuming agent
// falls back to its own built-in model.
type AgentsConfig struct {
	TaskAnalyzer     string
	ProjectAnalyzer  string
	AdviceGenerator  string
	Planning         string
	GoogleSearch     string
	URLContext       string
	ProactiveAdvisor string
	EntityManager    string `validate:"required"`
	ProjectArchivist string `validate:"required"`
}

// FirestoreConfig names the Firestore database instance.
type FirestoreConfig struct {
	DatabaseName string `validate:"required"`
}

// DeployConfig holds deploy-time settings.
type DeployConfig struct {
	StagingBucket string `validate:"required"`
}

// ObservabilityConfig holds logging configuration.
type ObservabilityConfig struct {
	LogLevel string `validate:"required,oneof=DEBUG INFO WARNING ERROR CRITICAL"`
}

// Options controls where Load looks for overrides.
type Options struct {
	// EnvFile is an explicit dotenv file to load before resolution. When
	// empty, a .env in the working directory is loaded if present.
	EnvFile string
	// Profile selects a built-in override profile by name.
	Profile string
	// ProfileFile loads an override profile from a YAML file. Takes
	// precedence over Profile.
	ProfileFile string
}

// Load resolves the full configuration. Precedence, highest first: process
// environment, .env file, profile overrides, built-in defaults. Any failure
// to read or resolve a source returns a *LoadError and nothing else happens;
// Load never mutates the environment beyond the dotenv import.
func Load(ctx context.Context, opts Options) (*Config, error) {
	_ = ctx

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, &LoadError{Source: opts.EnvFile, Err: err}
		}
	} else {
		// Best effort, same as loading backend/.env in older revisions.
		_ = godotenv.Load(".env")
	}

	profile, err := resolveProfile(opts)
	if err != nil {
		return nil, err
	}

	get := func(name, def string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		if profile != nil {
			if v, ok := profile.Overrides[name]; ok {
				return v
			}
		}
		return def
	}

	isLocal, err := strtobool(get(EnvIsLocal, "false"))
	if err != nil {
		return nil, &LoadError{Source: EnvIsLocal, Err: err}
	}

	cfg := &Config{
		Project: ProjectConfig{
			ProjectID:         get(EnvProjectID, DefaultProjectID),
			Location:          get(EnvLocation, DefaultLocation),
			IsLocal:           isLocal,
			ReasoningEngineID: get(EnvReasoningEngineID, DefaultReasoningEngineID),
		},
		Agents: AgentsConfig{
			TaskAnalyzer:     get(EnvTaskAnalyzerModel, ""),
			ProjectAnalyzer:  get(EnvProjectAnalyzerModel, ""),
			AdviceGenerator:  get(EnvAdviceGeneratorModel, ""),
			Planning:         get(EnvPlanningModel, ""),
			GoogleSearch:     get(EnvGoogleSearchModel, ""),
			URLContext:       get(EnvURLContextModel, ""),
			ProactiveAdvisor: get(EnvProactiveAdvisorModel, ""),
			EntityManager:    get(EnvEntityManagerModel, DefaultAgentModel),
			ProjectArchivist: get(EnvProjectArchivistModel, DefaultAgentModel),
		},
		Firestore: FirestoreConfig{
			DatabaseName: normalizeFirestoreName(get(EnvFirestoreDBName, DefaultFirestoreDBName)),
		},
		Deploy: DeployConfig{
			StagingBucket: get(EnvStagingBucketName, DefaultStagingBucket),
		},
		Observability: ObservabilityConfig{
			LogLevel: strings.ToUpper(get(EnvLogLevel, DefaultLogLevel)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{Source: "configuration", Err: err}
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks required fields and enumerated values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ReasoningEngineResourceName returns the fully qualified Vertex AI
// resource name of the deployed engine.
func (c *Config) ReasoningEngineResourceName() string {
	return fmt.Sprintf("projects/%s/locations/%s/reasoningEngines/%s",
		c.Project.ProjectID, c.Project.Location, c.Project.ReasoningEngineID)
}

// StagingBucketURI returns the gs:// URI of the deploy staging bucket.
func (c *DeployConfig) StagingBucketURI() string {
	return "gs://" + c.StagingBucket
}

// TimezoneOffsetHours returns the hour offset applied when rendering
// timestamps: 0 for local runs, 9 (JST) when deployed.
func (c *Config) TimezoneOffsetHours() int {
	if c.Project.IsLocal {
		return 0
	}
	return 9
}

// normalizeFirestoreName canonicalizes the default database name: the
// Firestore API spells it "(default)" but "default" keeps appearing in
// hand-written env files.
func normalizeFirestoreName(name string) string {
	if name == "default" {
		return "(default)"
	}
	return name
}

// strtobool converts a string representation of truth to a bool. True
// values are y, yes, t, true, on and 1; false values are n, no, f, false,
// off and 0. Anything else is an error.
func strtobool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid truth value %q", v)
}
