package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		hasError bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"invalid", LevelInfo, true},
		{"", LevelInfo, true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			level, err := ParseLevel(test.input)
			if test.hasError && err == nil {
				t.Error("expected error, got nil")
			}
			if !test.hasError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !test.hasError && level != test.expected {
				t.Errorf("expected %v, got %v", test.expected, level)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if got := LevelString(test.level); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("expected default level Info, got %v", cfg.Level)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected default output stderr, got %s", cfg.Output)
	}
	if !strings.Contains(cfg.FilePath, "palinview") {
		t.Errorf("default log path should mention palinview: %s", cfg.FilePath)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{
		Level:     LevelDebug,
		Format:    FormatJSON,
		Component: "test",
		Writer:    &buf,
	})
	if err != nil {
		t.Fatalf("failed to create JSON logger: %v", err)
	}
	defer logger.Close()

	logger.WithComponent("session").Debug("input changed", "epoch", 3)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "input changed" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["component"] != "session" {
		t.Errorf("unexpected component: %v", entry["component"])
	}
	if entry["epoch"] != float64(3) {
		t.Errorf("unexpected epoch: %v", entry["epoch"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&Config{Level: LevelWarn, Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l == nil || l.Logger == nil {
		t.Fatal("Discard returned nil logger")
	}
	l.Error("nothing to see")
}

func TestFileRotator(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "test.log")

	rotator, err := NewFileRotator(&Config{FilePath: logPath, MaxSize: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("failed to create rotator: %v", err)
	}
	defer rotator.Close()

	data := []byte("test log line\n")
	n, err := rotator.Write(data)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if n != len(data) {
		t.Errorf("expected to write %d bytes, wrote %d", len(data), n)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("log file was not created: %v", err)
	}
}

func TestFileRotatorRotation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	rotator, err := NewFileRotator(&Config{FilePath: logPath, MaxSize: 1, MaxBackups: 2})
	if err != nil {
		t.Fatalf("failed to create rotator: %v", err)
	}
	defer rotator.Close()

	line := bytes.Repeat([]byte("x"), 1023)
	line = append(line, '\n')
	for i := 0; i < 1100; i++ {
		if _, err := rotator.Write(line); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected rotated file: %v", err)
	}
	if _, err := os.Stat(logPath + ".3"); !os.IsNotExist(err) {
		t.Errorf("unexpected third backup: %v", err)
	}
}

func TestFileRotatorClosed(t *testing.T) {
	rotator, err := NewFileRotator(&Config{FilePath: filepath.Join(t.TempDir(), "c.log")})
	if err != nil {
		t.Fatal(err)
	}
	if err := rotator.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := rotator.Write([]byte("late")); err == nil {
		t.Error("expected write after close to fail")
	}
}

func TestCrashHandlerRecover(t *testing.T) {
	dir := t.TempDir()
	var logBuf, stderr bytes.Buffer
	log, err := New(&Config{Level: LevelInfo, Format: FormatJSON, Writer: &logBuf})
	if err != nil {
		t.Fatal(err)
	}

	var gotPath string
	h := NewCrashHandler(&CrashHandlerConfig{
		CrashDir:  dir,
		Component: "gui",
		Logger:    log,
		Stderr:    &stderr,
		OnCrash:   func(_ CrashReport, path string) { gotPath = path },
	})
	h.SetSessionID("abc")

	if h.Recover(nil, func() {}) {
		t.Fatal("Recover reported a crash for a clean run")
	}

	crashed := h.Recover(map[string]any{"epoch": 3}, func() { panic("boom") })
	if !crashed {
		t.Fatal("expected Recover to report the panic")
	}
	if gotPath == "" || filepath.Dir(gotPath) != dir {
		t.Fatalf("unexpected crash path %q", gotPath)
	}

	reports, err := h.CrashReports()
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	r := reports[0]
	if r.PanicValue != "boom" || r.Component != "gui" || r.SessionID != "abc" {
		t.Errorf("unexpected report %+v", r)
	}
	if r.Context["epoch"] != float64(3) {
		t.Errorf("context not preserved: %v", r.Context)
	}
	if !strings.Contains(stderr.String(), "Panic: boom") {
		t.Errorf("stderr summary missing: %s", stderr.String())
	}
	if !strings.Contains(logBuf.String(), `"msg":"crash"`) {
		t.Errorf("crash not logged: %s", logBuf.String())
	}

	if err := h.CleanupOldCrashReports(-time.Second); err != nil {
		t.Fatal(err)
	}
	reports, _ = h.CrashReports()
	if len(reports) != 0 {
		t.Errorf("expected cleanup to remove reports, %d left", len(reports))
	}
}
