package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/rxrank/analyzer"
)

// Config holds all rxrank configuration.
type Config struct {
	Port string `yaml:"port"`

	// MCPTransport selects the serving mode: "" for HTTP, "stdio" for an
	// MCP server on stdin/stdout.
	MCPTransport string `yaml:"mcp_transport"`

	// TraceDB is the SQLite path for the analysis trace store (HTTP mode).
	TraceDB string `yaml:"trace_db"`

	// TraceRemoteURL, when set in stdio mode, pushes trace entries to a
	// collector endpoint instead of writing SQLite locally.
	TraceRemoteURL string `yaml:"trace_remote_url"`

	// APIToken, when set, requires "Authorization: Bearer <token>" on the
	// analysis API routes.
	APIToken string `yaml:"api_token"`

	LogLevel string `yaml:"log_level"`

	Analyzer analyzer.Config `yaml:"analyzer"`
}

func (c *Config) defaults() {
	if c.Port == "" {
		c.Port = "8086"
	}
	if c.TraceDB == "" {
		c.TraceDB = "db/traces.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on the loaded config. Environment
// wins over file values so container deployments can override without
// editing YAML.
func (c *Config) applyEnv() {
	c.Port = env("PORT", c.Port)
	c.MCPTransport = env("MCP_TRANSPORT", c.MCPTransport)
	c.TraceDB = env("TRACE_DB", c.TraceDB)
	c.TraceRemoteURL = env("TRACE_REMOTE_URL", c.TraceRemoteURL)
	c.APIToken = env("API_TOKEN", c.APIToken)
	c.LogLevel = env("LOG_LEVEL", c.LogLevel)
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
