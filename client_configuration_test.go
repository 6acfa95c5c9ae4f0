// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeTomlFile(t *testing.T, content string) string {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "bigquery.toml")
	assertNilF(t, os.WriteFile(tomlPath, []byte(content), 0600))
	return dir
}

func TestLoadClientConfig(t *testing.T) {
	dir := writeTomlFile(t, `
[default]
project_id = "my-project"
location = "EU"
host = "localhost"
port = 9050
scheme = "http"
token = "tok"
request_timeout = 30
log_level = "DEBUG"
`)
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "")
	previousLevel := logger.GetLogLevel()
	defer func() {
		assertNilE(t, logger.SetLogLevel(previousLevel))
	}()

	cfg, err := LoadClientConfig()
	assertNilF(t, err)
	assertEqualE(t, cfg.ProjectID, "my-project")
	assertEqualE(t, cfg.Location, "EU")
	assertEqualE(t, cfg.Host, "localhost")
	assertEqualE(t, cfg.Port, 9050)
	assertEqualE(t, cfg.Scheme, "http")
	assertEqualE(t, cfg.Token, "tok")
	assertEqualE(t, cfg.RequestTimeout, 30*time.Second)
	assertEqualE(t, cfg.LogLevel, "debug")
	assertEqualE(t, logger.GetLogLevel(), "debug")
}

func TestLoadClientConfigNamedProfile(t *testing.T) {
	dir := writeTomlFile(t, `
[default]
project_id = "default-project"

[staging]
project_id = "staging-project"
`)
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "staging")

	cfg, err := LoadClientConfig()
	assertNilF(t, err)
	assertEqualE(t, cfg.ProjectID, "staging-project")
}

func TestLoadClientConfigMissingProfile(t *testing.T) {
	dir := writeTomlFile(t, `
[default]
project_id = "p"
`)
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "absent")

	_, err := LoadClientConfig()
	assertNotNilF(t, err)
	var bqErr *BigQueryError
	assertErrorsAsF(t, err, &bqErr)
	assertEqualE(t, bqErr.Number, ErrCodeFailedToFindProfileInToml)
}

func TestLoadClientConfigWrongValueType(t *testing.T) {
	dir := writeTomlFile(t, `
[default]
project_id = 42
`)
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "")

	_, err := LoadClientConfig()
	assertNotNilF(t, err)
	var bqErr *BigQueryError
	assertErrorsAsF(t, err, &bqErr)
	assertEqualE(t, bqErr.Number, ErrCodeTomlFileParsingFailed)
}

func TestLoadClientConfigUnknownKeysIgnored(t *testing.T) {
	dir := writeTomlFile(t, `
[default]
project_id = "p"
future_option = "whatever"
`)
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "")

	cfg, err := LoadClientConfig()
	assertNilF(t, err)
	assertEqualE(t, cfg.ProjectID, "p")
}

func TestLoadClientConfigFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file permissions are not checked on windows")
	}
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "bigquery.toml")
	assertNilF(t, os.WriteFile(tomlPath, []byte("[default]\n"), 0644))
	t.Setenv("BIGQUERY_HOME", dir)
	t.Setenv("BIGQUERY_DEFAULT_PROFILE_NAME", "")

	_, err := LoadClientConfig()
	assertNotNilE(t, err, "a world-readable config file must be rejected")
}

func TestIsValidLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "DEBUG", "Info", "warn", "error"} {
		assertTrueE(t, isValidLogLevel(level), level)
	}
	assertFalseE(t, isValidLogLevel("verbose"))
	assertFalseE(t, isValidLogLevel(""))
}
