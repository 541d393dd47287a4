package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedNow = func() time.Time { return time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC) }

func TestRun(t *testing.T) {
	dir := t.TempDir()
	textfile := filepath.Join(dir, "healthrisk.prom")

	var stdout bytes.Buffer
	err := run([]string{
		"-age", "30", "-bmi", "25", "-bp", "120",
		"-cholesterol", "200", "-glucose", "100",
		"-smoking", "Non-smoker",
		"-out", dir, "-metrics-textfile", textfile,
	}, &stdout, fixedNow)
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		"Risk Level: Moderate Risk",
		"Risk Score: 5.30 / 10",
		"BMI: 25.0 (Overweight, Elevated)",
		"1. ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}

	doc, err := os.ReadFile(filepath.Join(dir, "health_risk_report_20261019.pdf"))
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Error("expected PDF content")
	}

	metrics, err := os.ReadFile(textfile)
	if err != nil {
		t.Fatalf("expected metrics textfile: %v", err)
	}
	if !strings.Contains(string(metrics), `healthrisk_reports_total{outcome="rendered"} 1`) {
		t.Errorf("unexpected metrics textfile:\n%s", metrics)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	if err := run([]string{"-age", "0", "-out", dir}, &stdout, fixedNow); err == nil {
		t.Fatal("expected error for out-of-range age")
	}
	if err := run([]string{"-smoking", "sometimes", "-out", dir}, &stdout, fixedNow); err == nil {
		t.Fatal("expected error for unknown smoking status")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected no report for invalid input, found %d files", len(entries))
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-weight", "80"}, &stdout, fixedNow); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
