package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomo/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(&buf, false)
	l.Debug("hidden")
	l.Info("shown", "mode", "focus")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"mode":"focus"`)

	buf.Reset()

	logger.New(&buf, true).Debug("visible")

	assert.Contains(t, buf.String(), "visible")
}

func TestDump(t *testing.T) {
	out := logger.Dump(struct{ Remaining int }{300})

	assert.Contains(t, out, "Remaining: (int) 300")
}
