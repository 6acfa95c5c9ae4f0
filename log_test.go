package gobigquery

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLogSetLevel(t *testing.T) {
	log := CreateDefaultLogger()
	assertNilF(t, log.SetLogLevel("info"))
	assertEqualE(t, log.GetLogLevel(), "info")
}

func TestSetLogLevelError(t *testing.T) {
	log := CreateDefaultLogger()
	assertNotNilE(t, log.SetLogLevel("unknown"))
}

func TestLowerLevelsAreSuppressed(t *testing.T) {
	log := CreateDefaultLogger()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	assertNilF(t, log.SetLogLevel("info"))

	log.Trace("should print at trace level")
	log.Debug("should print at debug level")
	log.Info("should print at info level")
	log.Warn("should print at warn level")
	log.Error("should print at error level")

	strbuf := buf.String()
	assertFalseE(t, strings.Contains(strbuf, "trace level"))
	assertFalseE(t, strings.Contains(strbuf, "debug level"))
	assertTrueE(t, strings.Contains(strbuf, "info level"))
	assertTrueE(t, strings.Contains(strbuf, "warn level"))
	assertTrueE(t, strings.Contains(strbuf, "error level"))
}

func TestLogWithField(t *testing.T) {
	log := CreateDefaultLogger()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	assertNilF(t, log.SetLogLevel("info"))

	log.WithField("jobState", "DONE").Info("hello")
	strbuf := buf.String()
	assertTrueE(t, strings.Contains(strbuf, "jobState"), strbuf)
	assertTrueE(t, strings.Contains(strbuf, "DONE"), strbuf)
}

func TestLogWithContextIncludesRegisteredKeys(t *testing.T) {
	log := CreateDefaultLogger()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	assertNilF(t, log.SetLogLevel("info"))

	ctx := context.WithValue(context.Background(), BQProjectIDKey, "my-project")
	ctx = context.WithValue(ctx, BQJobIDKey, "job_abc")

	log.WithContext(ctx).Info("test")
	strbuf := buf.String()
	assertTrueE(t, strings.Contains(strbuf, string(BQProjectIDKey)), strbuf)
	assertTrueE(t, strings.Contains(strbuf, "my-project"), strbuf)
	assertTrueE(t, strings.Contains(strbuf, string(BQJobIDKey)), strbuf)
	assertTrueE(t, strings.Contains(strbuf, "job_abc"), strbuf)
}

func TestLogWithEmptyContext(t *testing.T) {
	log := CreateDefaultLogger()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	assertNilF(t, log.SetLogLevel("info"))

	log.WithContext(context.Background()).Info("no fields")
	assertTrueE(t, strings.Contains(buf.String(), "no fields"))
}
