package logger

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("grouped %d entries", 3)
	Info("seed %d", 42)
	Warn("template %s missing", "advisory")

	assert.Equal(t, "[DEBUG] grouped 3 entries\n[INFO] seed 42\n[WARN] template advisory missing\n", buf.String())
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Section("hidden")
	Warn("shown")

	assert.Equal(t, "[WARN] shown\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Compose")

	assert.Equal(t, "\n=== Compose ===\n", buf.String())
}

func TestFields(t *testing.T) {
	assert.Equal(t, "", Fields())
	assert.Equal(t, "seed=7 type=litigation", Fields("seed", 7, "type", "litigation"))
	assert.Equal(t, "seed=7 orphan=?", Fields("seed", 7, "orphan"))
}

func TestTimed(t *testing.T) {
	buf := capture(t, true)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 1500 * time.Microsecond)
	}
	t.Cleanup(func() { now = time.Now })

	Timed("render")()

	assert.Equal(t, "[DEBUG] render took 1.5ms\n", buf.String())
}
