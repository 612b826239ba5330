package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"record": "record.json",
		"output": "out",
		"sources": ["https://example.com/job"],
		"use_browser": true,
		"max_skills": 10,
		"exact_confidence": 0.9
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "record.json", cfg.Record)
	assert.Equal(t, "out", cfg.Output)
	assert.Equal(t, []string{"https://example.com/job"}, cfg.Sources)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, 10, cfg.MaxSkills)
	assert.Equal(t, 0.9, cfg.ExactConfidence)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeLimits(t *testing.T) {
	assert.Error(t, (&Config{MaxSkills: -1}).Validate())
	assert.Error(t, (&Config{MinRoles: -2}).Validate())
}

func TestValidate_MinRolesExceedsMax(t *testing.T) {
	cfg := &Config{MinRoles: 5, MaxRoles: 3}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_roles")
}

func TestValidate_ConfidenceOutOfRange(t *testing.T) {
	err := (&Config{DomainConfidence: 1.5}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "domain_confidence")
}

func TestValidate_MissingRecordFile(t *testing.T) {
	cfg := &Config{Record: filepath.Join(t.TempDir(), "missing.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record file not found")
}

func TestValidate_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	recordPath := filepath.Join(dir, "record.json")
	require.NoError(t, os.WriteFile(recordPath, []byte("{}"), 0o644))

	cfg := &Config{Record: recordPath}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &Config{Record: "mine.json"}
	merged := cfg.MergeWithDefaults(Config{
		Record:    "default.json",
		Output:    "output",
		MaxSkills: 12,
	})

	assert.Equal(t, "mine.json", merged.Record)
	assert.Equal(t, "output", merged.Output)
	assert.Equal(t, 12, merged.MaxSkills)
}

func TestMergeWithDefaults_DoesNotOverrideSet(t *testing.T) {
	cfg := &Config{Output: "custom", MaxRoles: 2, SynonymConfidence: 0.4}
	merged := cfg.MergeWithDefaults(Config{Output: "output", MaxRoles: 5, SynonymConfidence: 0.7})

	assert.Equal(t, "custom", merged.Output)
	assert.Equal(t, 2, merged.MaxRoles)
	assert.Equal(t, 0.4, merged.SynonymConfidence)
}
