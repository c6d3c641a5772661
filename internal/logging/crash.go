package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// CrashReport is written to disk when a recovered panic reaches a
// CrashHandler.
type CrashReport struct {
	Timestamp    time.Time      `json:"timestamp"`
	GOOS         string         `json:"goos"`
	GOARCH       string         `json:"goarch"`
	NumGoroutine int            `json:"num_goroutine"`
	GoVersion    string         `json:"go_version"`
	PanicValue   string         `json:"panic_value"`
	StackTrace   string         `json:"stack_trace"`
	Component    string         `json:"component,omitempty"`
	SessionID    string         `json:"session_id,omitempty"`
	Context      map[string]any `json:"context,omitempty"`
}

// CrashHandler handles panic recovery and crash reporting.
type CrashHandler struct {
	mu        sync.Mutex
	crashDir  string
	component string
	sessionID string
	log       *Logger
	stderr    io.Writer
	onCrash   func(CrashReport, string)
}

// CrashHandlerConfig configures the crash handler.
type CrashHandlerConfig struct {
	// CrashDir is the directory to write crash dumps.
	CrashDir string

	// Component is the component name.
	Component string

	// Logger receives one error record per crash. Nil uses Default.
	Logger *Logger

	// Stderr receives a human-readable summary. Nil uses os.Stderr.
	Stderr io.Writer

	// OnCrash is called with the report and the path it was written to.
	OnCrash func(report CrashReport, path string)
}

// DefaultCrashDir returns the platform-specific default crash directory.
func DefaultCrashDir() string {
	switch runtime.GOOS {
	case "darwin":
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, "Library", "Logs", "DiagnosticReports", "palinview")
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		return filepath.Join(appData, "palinview", "crashes")
	default:
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			homeDir, _ := os.UserHomeDir()
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "palinview", "crashes")
	}
}

// NewCrashHandler creates a new CrashHandler.
func NewCrashHandler(cfg *CrashHandlerConfig) *CrashHandler {
	if cfg == nil {
		cfg = &CrashHandlerConfig{}
	}
	h := &CrashHandler{
		crashDir:  cfg.CrashDir,
		component: cfg.Component,
		log:       cfg.Logger,
		stderr:    cfg.Stderr,
		onCrash:   cfg.OnCrash,
	}
	if h.crashDir == "" {
		h.crashDir = DefaultCrashDir()
	}
	if h.log == nil {
		h.log = Default()
	}
	if h.stderr == nil {
		h.stderr = os.Stderr
	}
	return h
}

// Dir returns the crash report directory.
func (h *CrashHandler) Dir() string {
	return h.crashDir
}

// SetSessionID sets the session recorded in later reports.
func (h *CrashHandler) SetSessionID(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessionID = sessionID
}

// Recover runs fn and turns a panic into a crash report. It reports
// whether fn panicked.
func (h *CrashHandler) Recover(contextInfo map[string]any, fn func()) (crashed bool) {
	defer func() {
		if r := recover(); r != nil {
			crashed = true
			h.HandlePanic(r, contextInfo)
		}
	}()
	fn()
	return false
}

// HandlePanic builds a crash report for panicValue and writes it to the
// crash directory. It returns the file written, or "" if writing failed.
func (h *CrashHandler) HandlePanic(panicValue any, contextInfo map[string]any) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	report := CrashReport{
		Timestamp:    time.Now().UTC(),
		GOOS:         runtime.GOOS,
		GOARCH:       runtime.GOARCH,
		NumGoroutine: runtime.NumGoroutine(),
		GoVersion:    runtime.Version(),
		PanicValue:   fmt.Sprintf("%v", panicValue),
		StackTrace:   string(debug.Stack()),
		Component:    h.component,
		SessionID:    h.sessionID,
		Context:      contextInfo,
	}

	path, err := h.writeCrashDump(report)
	if err != nil {
		h.log.Error("crash report not written", "panic", report.PanicValue, "error", err)
	} else {
		h.log.Error("crash", "panic", report.PanicValue, "report", path)
	}

	if h.onCrash != nil {
		h.onCrash(report, path)
	}

	fmt.Fprintf(h.stderr, "\n=== CRASH REPORT ===\n")
	fmt.Fprintf(h.stderr, "Time: %s\n", report.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(h.stderr, "Panic: %s\n", report.PanicValue)
	fmt.Fprintf(h.stderr, "Stack trace:\n%s\n", report.StackTrace)
	if path != "" {
		fmt.Fprintf(h.stderr, "Crash dump written to: %s\n", path)
	}
	return path
}

func (h *CrashHandler) writeCrashDump(report CrashReport) (string, error) {
	if err := os.MkdirAll(h.crashDir, 0o750); err != nil {
		return "", fmt.Errorf("create crash directory: %w", err)
	}

	name := fmt.Sprintf("crash-%s-%s.json",
		report.Component,
		report.Timestamp.Format("20060102-150405.000000000"))
	path := filepath.Join(h.crashDir, name)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal crash report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}
	return path, nil
}

// CrashReports returns the readable reports in the crash directory.
func (h *CrashHandler) CrashReports() ([]CrashReport, error) {
	files, err := filepath.Glob(filepath.Join(h.crashDir, "crash-*.json"))
	if err != nil {
		return nil, err
	}

	reports := make([]CrashReport, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		var report CrashReport
		if err := json.Unmarshal(data, &report); err != nil {
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// CleanupOldCrashReports removes crash reports older than maxAge.
func (h *CrashHandler) CleanupOldCrashReports(maxAge time.Duration) error {
	files, err := filepath.Glob(filepath.Join(h.crashDir, "crash-*.json"))
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(file)
		}
	}
	return nil
}
