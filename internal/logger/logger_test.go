package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// resetLogger restores package state between tests.
func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected not verbose after SetVerbose(false)")
	}
}

func TestDebug_SilentWhenNotVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(false)

	Debug("parsing %d bytes", 42)

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebug_PrintsWhenVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Debug("parsing %d bytes", 42)

	got := buf.String()
	if !strings.Contains(got, "[DEBUG]") || !strings.Contains(got, "parsing 42 bytes") {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestLevels_PrefixMessages(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Info("validation dispatched")
	Warn("rule engine slow")

	got := buf.String()
	if !strings.Contains(got, "[INFO] validation dispatched") {
		t.Errorf("missing info line in %q", got)
	}
	if !strings.Contains(got, "[WARN] rule engine slow") {
		t.Errorf("missing warn line in %q", got)
	}
}

func TestWarn_PrintsWithoutVerbose(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(false)

	Warn("history store unavailable")

	if !strings.Contains(buf.String(), "[WARN] history store unavailable") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSection_PrintsHeader(t *testing.T) {
	defer resetLogger()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(true)

	Section("Validation")

	if !strings.Contains(buf.String(), "=== Validation ===") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
