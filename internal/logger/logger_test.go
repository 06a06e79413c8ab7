package logger

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level log.Level) *Logger {
	return NewWithOptions(buf, Options{Level: level, Formatter: log.LogfmtFormatter})
}

func TestErrorWithErrorValue(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, log.DebugLevel)

	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=error")
	assert.Contains(t, out, "msg=boom")
	assert.Contains(t, out, "err=boom")
}

func TestErrorWithErrorValueAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, log.DebugLevel)

	l.Error(fmt.Errorf("insert: %w", errors.New("timeout")), "create_failed", "title", "milk")

	out := buf.String()
	assert.Contains(t, out, "msg=create_failed")
	assert.Contains(t, out, `err="insert: timeout"`)
	assert.Contains(t, out, "title=milk")
}

func TestErrorWithPlainMessage(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, log.DebugLevel)

	l.Error("failed", "code", 500)

	out := buf.String()
	assert.Contains(t, out, "msg=failed")
	assert.Contains(t, out, "code=500")
	assert.NotContains(t, out, "err=")
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, log.InfoLevel)

	l.Debug("hidden")
	l.Info("shown")
	l.Warn("careful")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "level=warn")
}

func TestOptionsFor(t *testing.T) {
	assert.Equal(t, log.InfoLevel, OptionsFor("production").Level)
	assert.Equal(t, log.JSONFormatter, OptionsFor("production").Formatter)
	assert.Equal(t, log.DebugLevel, OptionsFor("development").Level)
	assert.Equal(t, log.DebugLevel, OptionsFor("test").Level)
}

func TestWithAndWriter(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, log.DebugLevel).With("component", "http")

	_, err := l.Writer().Write([]byte("GET / 200\n"))
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="GET / 200"`)
	assert.Contains(t, out, "component=http")
}
