// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"errors"
	"os"
	path "path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	toml "github.com/BurntSushi/toml"
)

// ClientConfig is the union of everything a client can load from the
// bigquery.toml profile file: the REST connection settings plus the
// defaults applied to requests built on top of them.
type ClientConfig struct {
	RestClientConfig

	ProjectID string
	Location  string
	LogLevel  string
}

// LoadClientConfig returns the client config loaded from the toml file.
// By default, BIGQUERY_HOME(toml file path) is os.home/bigquery
// and BIGQUERY_DEFAULT_PROFILE_NAME is 'default'
func LoadClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	profile := getProfileName(os.Getenv("BIGQUERY_DEFAULT_PROFILE_NAME"))
	configDir, err := getTomlFilePath(os.Getenv("BIGQUERY_HOME"))
	if err != nil {
		return nil, err
	}
	tomlFilePath := path.Join(configDir, "bigquery.toml")
	err = validateFilePermission(tomlFilePath)
	if err != nil {
		return nil, err
	}
	tomlInfo := make(map[string]interface{})
	_, err = toml.DecodeFile(tomlFilePath, &tomlInfo)
	if err != nil {
		return nil, err
	}
	profileSection, exist := tomlInfo[profile]
	if !exist {
		return nil, &BigQueryError{
			Number:  ErrCodeFailedToFindProfileInToml,
			Message: errMsgFailedToFindProfileInTomlFile,
		}
	}
	profileConfig, ok := profileSection.(map[string]interface{})
	if !ok {
		return nil, &BigQueryError{
			Number:  ErrCodeTomlFileParsingFailed,
			Message: errMsgFailedToParseTomlFile,
		}
	}
	err = parseToml(cfg, profileConfig)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		if err = logger.SetLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func parseToml(cfg *ClientConfig, profile map[string]interface{}) error {
	var parsingErr error
	err := &BigQueryError{
		Number:  ErrCodeTomlFileParsingFailed,
		Message: errMsgFailedToParseTomlFile,
	}
	for key, value := range profile {
		switch strings.ToLower(key) {
		case "project", "project_id":
			cfg.ProjectID, parsingErr = parseString(value)
			if parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "location":
			cfg.Location, parsingErr = parseString(value)
			if parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "scheme":
			cfg.Scheme, parsingErr = parseString(value)
			if parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "host":
			cfg.Host, parsingErr = parseString(value)
			if parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "port":
			if cfg.Port, parsingErr = parseInt(value); parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "token":
			cfg.Token, parsingErr = parseString(value)
			if parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "requesttimeout", "request_timeout":
			if cfg.RequestTimeout, parsingErr = parseDuration(value); parsingErr != nil {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
		case "loglevel", "log_level":
			var v string
			v, parsingErr = parseString(value)
			if parsingErr != nil || !isValidLogLevel(v) {
				err.MessageArgs = []interface{}{key, value}
				return err
			}
			cfg.LogLevel = strings.ToLower(v)
		default:
			logger.Warnf("unknown key %v in profile, ignored", key)
		}
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic":
		return true
	}
	return false
}

func parseInt(i interface{}) (int, error) {
	switch v := i.(type) {
	case string:
		return strconv.Atoi(v)
	case int:
		return v, nil
	case int64:
		return int(v), nil
	}
	return 0, errors.New("failed to parse the value to integer")
}

// parseDuration reads a duration expressed in whole seconds.
func parseDuration(i interface{}) (time.Duration, error) {
	v, ok := i.(string)
	if !ok {
		num, err := parseInt(i)
		if err != nil {
			return time.Duration(0), err
		}
		return time.Duration(int64(num) * int64(time.Second)), nil
	}
	t, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Duration(0), err
	}
	return time.Duration(t * int64(time.Second)), nil
}

func parseString(i interface{}) (string, error) {
	v, ok := i.(string)
	if !ok {
		return "", errors.New("failed to convert the value to string")
	}
	return v, nil
}

func getTomlFilePath(filePath string) (string, error) {
	if len(filePath) != 0 {
		if path.IsAbs(filePath) {
			return filePath, nil
		}
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		filePath = path.Join(homeDir, "bigquery")
	}
	absDir, err := path.Abs(filePath)
	if err != nil {
		return "", err
	}
	return absDir, nil
}

func getProfileName(profile string) string {
	if len(profile) != 0 {
		return profile
	}
	return "default"
}

func validateFilePermission(filePath string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return err
	}
	if permission := fileInfo.Mode().Perm(); permission != os.FileMode(0600) {
		return errors.New("your access to the file was denied")
	}
	return nil
}
