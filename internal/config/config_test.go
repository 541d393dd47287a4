package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenDefaultFileMissing(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("expected write timeout 30s, got %s", cfg.Server.WriteTimeout)
	}
	if cfg.Report.OutputDir != "reports" {
		t.Errorf("unexpected report dir: %s", cfg.Report.OutputDir)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("unexpected metrics config: %+v", cfg.Metrics)
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "未找到配置文件") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  environment: staging
server:
  port: 9090
  read_timeout: 3s
report:
  output_dir: /tmp/reports
logging:
  output_paths: stdout,/tmp/healthrisk.log
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HEALTHRISK_SERVER_MODE", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.App.Environment != "staging" {
		t.Errorf("unexpected environment: %s", cfg.App.Environment)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Server.Mode != "debug" {
		t.Errorf("expected env override for server.mode, got %s", cfg.Server.Mode)
	}
	if len(cfg.Logging.OutputPaths) != 2 || cfg.Logging.OutputPaths[1] != "/tmp/healthrisk.log" {
		t.Errorf("unexpected output paths: %v", cfg.Logging.OutputPaths)
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 0, Mode: "verbose"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"app.environment",
		"server.port",
		"server.mode",
		"server.shutdown_timeout",
		"report.output_dir",
		"logging.level",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in error, got %s", want, msg)
		}
	}
}
