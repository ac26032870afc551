package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{}
	cfg.defaults()
	if cfg.Port != "8086" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.TraceDB != "db/traces.db" {
		t.Errorf("trace_db: got %q", cfg.TraceDB)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rxrank.yaml")
	data := `
port: "9001"
api_token: tok
mcp_transport: stdio
analyzer:
  context_window: 12
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9001" || cfg.APIToken != "tok" || cfg.MCPTransport != "stdio" {
		t.Errorf("config: %+v", cfg)
	}
	if cfg.Analyzer.ContextWindow != 12 {
		t.Errorf("context_window: got %d", cfg.Analyzer.ContextWindow)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("PORT", "9002")
	t.Setenv("API_TOKEN", "envtok")
	cfg := &Config{Port: "8086", APIToken: "filetok"}
	cfg.applyEnv()
	if cfg.Port != "9002" {
		t.Errorf("port: got %q", cfg.Port)
	}
	if cfg.APIToken != "envtok" {
		t.Errorf("api_token: got %q", cfg.APIToken)
	}
}
