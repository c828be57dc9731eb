package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput redirects devtool messages to a buffer without colors
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevColor := output, colorEnabled
	output, colorEnabled = &buf, false
	t.Cleanup(func() { output, colorEnabled = prevOut, prevColor })
	return &buf
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(&MigrateCommand{}, &DoctorCommand{})
	r.Register(&CheckDataCommand{})

	cmd, ok := r.Get("doctor")
	assert.True(t, ok)
	assert.Equal(t, "doctor", cmd.Name())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	names := []string{}
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"check-data", "doctor", "migrate"}, names)
}

func TestRegistry_PrintHelp(t *testing.T) {
	r := NewRegistry(&MigrateCommand{}, &CheckDataCommand{})

	var buf bytes.Buffer
	r.PrintHelp(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Usage: devtool <command> [args...]", lines[0])
	assert.Contains(t, lines[len(lines)-2], "check-data")
	assert.Contains(t, lines[len(lines)-1], "migrate")
	// descriptions share one column
	assert.Equal(t,
		strings.Index(lines[len(lines)-2], (&CheckDataCommand{}).Description()),
		strings.Index(lines[len(lines)-1], (&MigrateCommand{}).Description()))
}

func TestPrintHelpers(t *testing.T) {
	buf := captureOutput(t)

	PrintSuccess("done %d", 3)
	PrintWarning("careful")
	PrintHeader("Section")

	assert.Equal(t, "✓ done 3\n⚠ careful\n\n=== Section ===\n", buf.String())

	buf.Reset()
	colorEnabled = true
	PrintError("boom")
	assert.Equal(t, colorRed+"✗ boom"+colorReset+"\n", buf.String())
}

func TestHasFlag(t *testing.T) {
	assert.True(t, hasFlag([]string{"-y"}, "-y"))
	assert.False(t, hasFlag([]string{"--yes"}, "-y"))
	assert.False(t, hasFlag(nil, "-y"))
}

func TestCheckDataCommand_Embedded(t *testing.T) {
	buf := captureOutput(t)
	t.Setenv("DATA_DIR", "")

	assert.NoError(t, (&CheckDataCommand{}).Run(nil))
	assert.Contains(t, buf.String(), "embedded fixtures")
	assert.Contains(t, buf.String(), "placeholders")
}
