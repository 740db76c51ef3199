package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDefaultScenario(t *testing.T) {
	dir := t.TempDir()
	reportFile := filepath.Join(dir, "report.yaml")
	if code := run("", filepath.Join(dir, "log.txt"), reportFile, true, true); code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	data, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "failed: 0") {
		t.Errorf("Expected a report without failures, got:\n%s", data)
	}
}

func TestRunFailingScenario(t *testing.T) {
	dir := t.TempDir()
	scenarioFile := filepath.Join(dir, "scenario.yaml")
	content := "steps:\n  - op: remove\n    index: 0\n"
	if err := os.WriteFile(scenarioFile, []byte(content), 0644); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logFile := filepath.Join(dir, "log.txt")
	if code := run(scenarioFile, logFile, "", false, false); code != 1 {
		t.Fatalf("Expected exit code 1, got %d", code)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "1 of 1 steps failed") {
		t.Errorf("Expected failure summary in the log, got:\n%s", data)
	}
}

func TestRunMissingScenario(t *testing.T) {
	if code := run(filepath.Join(t.TempDir(), "missing.yaml"), "", "", false, false); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}
