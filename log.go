// Copyright (c) 2026 Google LLC. All rights reserved.

package gobigquery

import (
	"context"
	"io"

	rlog "github.com/sirupsen/logrus"
)

type contextKey string

// BQProjectIDKey is context key of project id
const BQProjectIDKey contextKey = "LOG_PROJECT_ID"

// BQJobIDKey is context key of job id
const BQJobIDKey contextKey = "LOG_JOB_ID"

// LogKeys registers string-typed context keys to be written to the logs
// when logger.WithContext is used
var LogKeys = [...]contextKey{BQProjectIDKey, BQJobIDKey}

// BQLogger bigquery logger interface which abstracts away the underlying
// logging mechanism.
type BQLogger interface {
	rlog.Ext1FieldLogger
	SetLogLevel(level string) error
	GetLogLevel() string
	WithContext(ctx context.Context) *rlog.Entry
	SetOutput(output io.Writer)
}

type defaultLogger struct {
	*rlog.Logger
}

// SetLogLevel set logging level for calls from the library
func (log *defaultLogger) SetLogLevel(level string) error {
	actualLevel, err := rlog.ParseLevel(level)
	if err != nil {
		return err
	}
	log.Logger.SetLevel(actualLevel)
	return nil
}

// GetLogLevel return current logging level
func (log *defaultLogger) GetLogLevel() string {
	return log.Logger.GetLevel().String()
}

// WithContext return Entry to include fields in logs
func (log *defaultLogger) WithContext(ctx context.Context) *rlog.Entry {
	return log.Logger.WithFields(context2Fields(ctx))
}

// CreateDefaultLogger return a new instance of BQLogger with default config
func CreateDefaultLogger() BQLogger {
	var inner = rlog.New()
	return &defaultLogger{Logger: inner}
}

// logger is the logger for all bigquery log output
var logger = CreateDefaultLogger()

func init() {
	_ = logger.SetLogLevel("error")
}

// GetLogger return logger that is not public
func GetLogger() BQLogger {
	return logger
}

// SetLogger set a new logger of BQLogger interface for gobigquery
func SetLogger(inLogger *BQLogger) {
	logger = *inLogger
}

func context2Fields(ctx context.Context) rlog.Fields {
	var fields = rlog.Fields{}
	if ctx == nil {
		return fields
	}
	for i := 0; i < len(LogKeys); i++ {
		if ctx.Value(LogKeys[i]) != nil {
			fields[string(LogKeys[i])] = ctx.Value(LogKeys[i])
		}
	}
	return fields
}
