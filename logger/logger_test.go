package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerServiceField(t *testing.T) {
	log := NewLogger("dispatch-etl-test", "debug", false)
	buf := bytes.NewBufferString("")
	log.SetOutput(buf)

	log.Info("hello")
	out := buf.String()
	if !strings.Contains(out, "dispatch-etl-test") {
		t.Fatalf("expected service name in log output, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected message in log output, got %q", out)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	log := NewLogger("dispatch-etl-test", "info", false)
	buf := bytes.NewBufferString("")
	log.SetOutput(buf)

	log.Debug("should be filtered")
	if strings.Contains(buf.String(), "should be filtered") {
		t.Fatalf("debug message leaked at info level: %q", buf.String())
	}
	log.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("warn message missing at info level: %q", buf.String())
	}
}
