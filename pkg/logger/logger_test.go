package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN)
	log.SetOutput(&buf)

	log.Debug("debug message")
	log.Info("info message")
	assert.Empty(t, buf.String())

	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "error message")
}

func TestFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG)
	log.SetOutput(&buf)

	log.Info("listening on port %s", "3000")
	assert.Contains(t, buf.String(), "listening on port 3000")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, INFO, ParseLevel("nonsense"))
}
