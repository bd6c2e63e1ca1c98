package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinProfile(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		p, ok := BuiltinProfile(ProfileProduction)
		require.True(t, ok)
		assert.Equal(t, "ERROR", p.Overrides[EnvLogLevel])
	})

	t.Run("debug", func(t *testing.T) {
		p, ok := BuiltinProfile(ProfileDebug)
		require.True(t, ok)
		assert.Equal(t, "DEBUG", p.Overrides[EnvLogLevel])
		assert.Equal(t, DefaultAgentModel, p.Overrides[EnvTaskAnalyzerModel])
		assert.Equal(t, DefaultAgentModel, p.Overrides[EnvProactiveAdvisorModel])
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := BuiltinProfile("staging")
		assert.False(t, ok)
	})
}

func TestLoad_Profiles(t *testing.T) {
	t.Run("debug profile flips log level and enables models", func(t *testing.T) {
		os.Clearenv()

		cfg, err := Load(context.Background(), Options{Profile: ProfileDebug})
		require.NoError(t, err)

		assert.Equal(t, "DEBUG", cfg.Observability.LogLevel)
		assert.Equal(t, DefaultAgentModel, cfg.Agents.TaskAnalyzer)
		assert.Equal(t, DefaultAgentModel, cfg.Agents.Planning)
		// everything else keeps its default
		assert.Equal(t, DefaultProjectID, cfg.Project.ProjectID)
		assert.Equal(t, DefaultFirestoreDBName, cfg.Firestore.DatabaseName)
	})

	t.Run("production profile matches the shipped defaults", func(t *testing.T) {
		os.Clearenv()

		cfg, err := Load(context.Background(), Options{Profile: ProfileProduction})
		require.NoError(t, err)

		assert.Equal(t, "ERROR", cfg.Observability.LogLevel)
		assert.Empty(t, cfg.Agents.TaskAnalyzer)
	})

	t.Run("environment beats the profile", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("LOG_LEVEL", "WARNING")

		cfg, err := Load(context.Background(), Options{Profile: ProfileDebug})
		require.NoError(t, err)
		assert.Equal(t, "WARNING", cfg.Observability.LogLevel)
	})

	t.Run("unknown profile is a load error", func(t *testing.T) {
		os.Clearenv()

		cfg, err := Load(context.Background(), Options{Profile: "staging"})
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrConfigLoad)
	})
}

func TestLoadProfileFile(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "local.yaml")
		body := "name: local\noverrides:\n  LOG_LEVEL: DEBUG\n  IS_LOCAL: \"true\"\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		p, err := LoadProfileFile(path)
		require.NoError(t, err)
		assert.Equal(t, "local", p.Name)
		assert.Equal(t, "DEBUG", p.Overrides[EnvLogLevel])
		assert.Equal(t, "true", p.Overrides[EnvIsLocal])
	})

	t.Run("file feeds Load", func(t *testing.T) {
		os.Clearenv()
		path := filepath.Join(t.TempDir(), "local.yaml")
		body := "name: local\noverrides:\n  IS_LOCAL: \"yes\"\n  FIRESTORE_DB_NAME: default\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := Load(context.Background(), Options{ProfileFile: path})
		require.NoError(t, err)
		assert.True(t, cfg.Project.IsLocal)
		assert.Equal(t, "(default)", cfg.Firestore.DatabaseName)
	})

	t.Run("unknown variable name is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "typo.yaml")
		body := "name: typo\noverrides:\n  LOG_LEVL: DEBUG\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := LoadProfileFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigLoad)
		assert.Contains(t, err.Error(), "LOG_LEVL")
	})

	t.Run("derived variables cannot be overridden", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "derived.yaml")
		body := "name: derived\noverrides:\n  GOOGLE_CLOUD_PROJECT: elsewhere\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := LoadProfileFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadProfileFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigLoad)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("overrides: [not, a, map"), 0o600))

		_, err := LoadProfileFile(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfigLoad)
	})
}

func TestKnownName(t *testing.T) {
	assert.True(t, KnownName(EnvProjectID))
	assert.True(t, KnownName(EnvProactiveAdvisorModel))
	assert.False(t, KnownName(EnvGoogleCloudProject))
	assert.False(t, KnownName("RANDOM_VAR"))
}
