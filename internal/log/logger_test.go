package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbosityGating(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelQuiet, &buf)

	Info("should not appear")
	Debug("should not appear")
	Warn("warning appears")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("quiet level leaked info/debug output: %q", out)
	}
	if !strings.Contains(out, "warning appears") {
		t.Errorf("warning missing from output: %q", out)
	}
}

func TestInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	Initialize(LevelInfo, &buf)

	Info("searching", "query", "torvalds")
	Debug("hidden at info")

	out := buf.String()
	if !strings.Contains(out, "searching") {
		t.Errorf("info message missing: %q", out)
	}
	if !strings.Contains(out, "torvalds") {
		t.Errorf("info attrs missing: %q", out)
	}
	if strings.Contains(out, "hidden at info") {
		t.Errorf("debug leaked at info level: %q", out)
	}
}

func TestIsDebug(t *testing.T) {
	Initialize(LevelDebug, &bytes.Buffer{})
	if !IsDebug() {
		t.Error("IsDebug() = false at debug level")
	}
	if Verbosity() != LevelDebug {
		t.Errorf("Verbosity() = %d, want %d", Verbosity(), LevelDebug)
	}

	Initialize(LevelQuiet, &bytes.Buffer{})
	if IsDebug() {
		t.Error("IsDebug() = true at quiet level")
	}
}
