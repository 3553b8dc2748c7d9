package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

// TestVerboseModeShowsDebugMessages tests that --verbose shows debug messages
func TestVerboseModeShowsDebugMessages(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, LevelInfo)

	// Debug should not appear at Info level
	log.Debug("debug message before verbose")
	if strings.Contains(buf.String(), "debug message before verbose") {
		t.Error("Debug message should not appear at Info level")
	}

	log.SetVerbose(true)

	log.Debug("debug message after verbose")
	if !strings.Contains(buf.String(), "debug message after verbose") {
		t.Error("Debug message should appear when verbose is enabled")
	}
}

// TestQuietModeSuppressesInfoMessages tests that --quiet suppresses info messages
func TestQuietModeSuppressesInfoMessages(t *testing.T) {
	buf := new(bytes.Buffer)
	log := New(buf, LevelInfo)

	log.Info("info message before quiet")
	if !strings.Contains(buf.String(), "info message before quiet") {
		t.Error("Info message should appear at Info level")
	}

	buf.Reset()
	log.SetQuiet(true)

	log.Info("info message after quiet")
	if strings.Contains(buf.String(), "info message after quiet") {
		t.Error("Info message should not appear when quiet is enabled")
	}

	// Error should still appear in quiet mode
	log.Error("error message in quiet mode")
	if !strings.Contains(buf.String(), "error message in quiet mode") {
		t.Error("Error message should appear even in quiet mode")
	}
}

// TestLogLevelHierarchy tests that log levels work correctly
func TestLogLevelHierarchy(t *testing.T) {
	tests := []struct {
		name        string
		level       Level
		expectDebug bool
		expectInfo  bool
		expectWarn  bool
		expectError bool
	}{
		{"Debug level shows all", LevelDebug, true, true, true, true},
		{"Info level hides debug", LevelInfo, false, true, true, true},
		{"Warn level hides debug and info", LevelWarn, false, false, true, true},
		{"Error level shows only errors", LevelError, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			log := New(buf, tt.level)

			log.Debug("msg-debug")
			log.Info("msg-info")
			log.Warn("msg-warn")
			log.Error("msg-error")

			output := buf.String()

			if tt.expectDebug != strings.Contains(output, "msg-debug") {
				t.Errorf("Debug: expected %v, got %v", tt.expectDebug, !tt.expectDebug)
			}
			if tt.expectInfo != strings.Contains(output, "msg-info") {
				t.Errorf("Info: expected %v, got %v", tt.expectInfo, !tt.expectInfo)
			}
			if tt.expectWarn != strings.Contains(output, "msg-warn") {
				t.Errorf("Warn: expected %v, got %v", tt.expectWarn, !tt.expectWarn)
			}
			if tt.expectError != strings.Contains(output, "msg-error") {
				t.Errorf("Error: expected %v, got %v", tt.expectError, !tt.expectError)
			}
		})
	}
}

func TestSetVerboseEnablesDebugLevel(t *testing.T) {
	log := New(new(bytes.Buffer), LevelInfo)
	log.SetVerbose(true)
	if log.Level() != LevelDebug {
		t.Errorf("SetVerbose(true) should set level to Debug, got %v", log.Level())
	}

	log = New(new(bytes.Buffer), LevelInfo)
	log.SetVerbose(false)
	if log.Level() != LevelInfo {
		t.Errorf("SetVerbose(false) should keep level Info, got %v", log.Level())
	}
}

func TestSetQuietEnablesErrorLevel(t *testing.T) {
	log := New(new(bytes.Buffer), LevelInfo)
	log.SetQuiet(true)
	if log.Level() != LevelError {
		t.Errorf("SetQuiet(true) should set level to Error, got %v", log.Level())
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	once = sync.Once{}
	defaultLogger = nil
	defer func() {
		once = sync.Once{}
		defaultLogger = nil
	}()

	buf := new(bytes.Buffer)
	SetOutput(buf)
	Default().SetLevel(LevelDebug)

	Debug("debug test")
	Info("info test")
	Warn("warn test")
	Error("error test")

	output := buf.String()
	for _, want := range []string{"debug test", "info test", "warn test", "error test"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output %q", want, output)
		}
	}
}
