package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestLog(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	// Log should not panic
	Log("test message")
	Log("test with %s", "argument")
	Log("test with %d and %s", 42, "string")
}

func TestLogFile_Exists(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Enable debug level to test Log() which maps to debug
	SetDebug(true)
	defer SetDebug(false)

	testMsg := "test-unique-string-12345"
	Log("%s", testMsg)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), testMsg) {
		t.Error("Log file should contain the logged message")
	}
}

func TestLevels(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetLevel(LevelInfo)
	Debug("hidden-debug-message")
	Info("visible-info-message")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if strings.Contains(string(content), "hidden-debug-message") {
		t.Error("Debug message should be suppressed at Info level")
	}
	if !strings.Contains(string(content), "visible-info-message") {
		t.Error("Info message should be logged at Info level")
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Log("concurrent message %d", n)
		}(i)
	}
	wg.Wait()
}

func TestComponentLogger(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	log := ComponentLogger("Layout")
	log.Info("widget added", "id", "w-1")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "component=Layout") {
		t.Error("Component logger should attach the component attribute")
	}
}

func TestReset(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	cleanup()

	// After Reset, Init should succeed again with a new path
	tmpDir := t.TempDir()
	if err := Init(filepath.Join(tmpDir, "second.log")); err != nil {
		t.Fatalf("Init after Reset failed: %v", err)
	}
	Reset()
}
