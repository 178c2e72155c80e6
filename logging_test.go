package postfx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_DebugToggle(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "fx", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String(), "debug output must be suppressed by default")

	l.SetDebug(true)
	l.Debugf("shown %d", 2)
	out := buf.String()
	assert.Contains(t, out, "DEBUG shown 2")
	assert.Contains(t, out, "fx ", "prefix must lead each line")
}

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "", false)

	l.Infof("a")
	l.Warnf("b")
	l.Errorf("c")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	assert.Contains(t, lines[0], "INFO a")
	assert.Contains(t, lines[1], "WARN b")
	assert.Contains(t, lines[2], "ERROR c")
}
