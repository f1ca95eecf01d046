package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, false)

	l.Info("loaded %d launches", 56)
	l.Warn("slow")
	l.Error("boom")
	l.Debug("hidden")

	if !strings.Contains(out.String(), "INFO  loaded 56 launches") {
		t.Errorf("info line missing: %q", out.String())
	}
	if !strings.Contains(out.String(), "WARN  slow") {
		t.Errorf("warn line missing: %q", out.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Error("debug written while disabled")
	}
	if !strings.Contains(errOut.String(), "ERROR boom") || strings.Contains(out.String(), "boom") {
		t.Errorf("error should go to errOut only: out=%q err=%q", out.String(), errOut.String())
	}
	if strings.Contains(out.String(), "\033[") {
		t.Error("buffers must not receive color codes")
	}

	l.SetDebug(true)
	l.Debug("visible")
	if !l.DebugEnabled() || !strings.Contains(out.String(), "DEBUG visible") {
		t.Errorf("debug line missing: %q", out.String())
	}
}
