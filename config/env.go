package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Format selects the rendering used by WriteEnv.
type Format string

const (
	FormatShell  Format = "shell"
	FormatDotenv Format = "dotenv"
)

// EnvMap returns the full name-to-value mapping this configuration stands
// for: every active entry, any enabled agent-model override, and the
// derived runtime entries. Disabled model overrides do not appear at all,
// which lets the consuming agent pick its own built-in model.
func (c *Config) EnvMap() map[string]string {
	m := map[string]string{
		EnvProjectID:             c.Project.ProjectID,
		EnvLocation:              c.Project.Location,
		EnvLogLevel:              c.Observability.LogLevel,
		EnvIsLocal:               strconv.FormatBool(c.Project.IsLocal),
		EnvReasoningEngineID:     c.Project.ReasoningEngineID,
		EnvEntityManagerModel:    c.Agents.EntityManager,
		EnvProjectArchivistModel: c.Agents.ProjectArchivist,
		EnvFirestoreDBName:       c.Firestore.DatabaseName,
		EnvStagingBucketName:     c.Deploy.StagingBucket,

		EnvGoogleCloudProject:  c.Project.ProjectID,
		EnvGoogleCloudLocation: c.Project.Location,
		EnvGenAIUseVertexAI:    "true",
		EnvOtelSDKDisabled:     "true",
	}

	for name, model := range c.Agents.modelOverrides() {
		if model != "" {
			m[name] = model
		}
	}

	return m
}

// modelOverrides maps the optional agent-model variables to their values.
func (c *AgentsConfig) modelOverrides() map[string]string {
	return map[string]string{
		EnvTaskAnalyzerModel:     c.TaskAnalyzer,
		EnvProjectAnalyzerModel:  c.ProjectAnalyzer,
		EnvAdviceGeneratorModel:  c.AdviceGenerator,
		EnvPlanningModel:         c.Planning,
		EnvGoogleSearchModel:     c.GoogleSearch,
		EnvURLContextModel:       c.URLContext,
		EnvProactiveAdvisorModel: c.ProactiveAdvisor,
	}
}

// Apply materializes EnvMap into the process environment. Variables that
// are already set keep their value; since the environment also fed Load,
// an existing value equals the one that would have been written. The full
// mapping is computed before the first write, so a failed Load never
// leaves a partially mutated environment. Apply is idempotent.
func (c *Config) Apply() error {
	m := c.EnvMap()
	for _, name := range sortedKeys(m) {
		if _, ok := os.LookupEnv(name); ok {
			continue
		}
		if err := os.Setenv(name, m[name]); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}
	return nil
}

// WriteEnv renders EnvMap to w, sorted by name. FormatShell emits lines
// fit for eval ("export K=\"v\""); FormatDotenv emits plain K=V pairs.
func (c *Config) WriteEnv(w io.Writer, format Format) error {
	m := c.EnvMap()
	for _, name := range sortedKeys(m) {
		var err error
		switch format {
		case FormatShell:
			_, err = fmt.Fprintf(w, "export %s=%q\n", name, m[name])
		case FormatDotenv:
			_, err = fmt.Fprintf(w, "%s=%s\n", name, m[name])
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
