package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRealMainReportsErrorToLog 出错时返回非零退出码，日志在退出前写入并关闭
func TestRealMainReportsErrorToLog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	logPath := filepath.Join(dir, "memory-tui.log")
	*logFile = logPath
	*levels = filepath.Join(dir, "missing.yaml")
	t.Cleanup(func() {
		*logFile = ""
		*levels = ""
		log.SetOutput(os.Stderr)
	})

	if code := realMain(); code != 1 {
		t.Fatalf("realMain() = %d, want 1", code)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(content), "[TUI] Error") {
		t.Errorf("log file missing error line:\n%s", content)
	}
}

func TestSetupLogDiscardsByDefault(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closeLog := setupLog("")
	defer closeLog()
	if log.Writer() == os.Stderr {
		t.Error("logs must not go to the terminal")
	}
}
