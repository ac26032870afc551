// CLAUDE:SUMMARY Entry point for the rxrank regex analysis service — chi HTTP API or MCP stdio, SQLite trace store.
// Command rxrank serves the regex strategy analysis engine.
//
// Usage:
//
//	rxrank                         # HTTP API on :8086
//	rxrank -config rxrank.yaml     # HTTP API from YAML config
//	MCP_TRANSPORT=stdio rxrank     # MCP server on stdin/stdout
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/rxrank/analyzer"
	"github.com/hazyhaar/rxrank/dbopen"
	"github.com/hazyhaar/rxrank/trace"
)

var serverImpl = &mcp.Implementation{
	Name:    "rxrank",
	Version: "1.0.0",
}

func main() {
	configPath := flag.String("config", "", "path to rxrank.yaml config file")
	flag.Parse()

	cfg := &Config{}
	if *configPath != "" {
		loaded, err := LoadConfigFile(*configPath)
		if err != nil {
			slog.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.applyEnv()
	cfg.defaults()

	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	// In stdio mode stdout carries the MCP wire, so logs always go to stderr.
	logOut := os.Stdout
	if cfg.MCPTransport == "stdio" {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg.Analyzer.Logger = logger
	eng := analyzer.New(cfg.Analyzer)

	if cfg.MCPTransport == "stdio" {
		if err := runStdio(ctx, cfg, eng); err != nil {
			slog.Error("mcp stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := runHTTP(ctx, cfg, eng); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}

// runStdio serves the analysis tools over MCP on stdin/stdout. Traces go to
// a remote collector when configured, otherwise to the local SQLite store.
func runStdio(ctx context.Context, cfg *Config, eng *analyzer.Engine) error {
	if cfg.TraceRemoteURL != "" {
		rs := trace.NewRemoteStore(cfg.TraceRemoteURL, nil)
		trace.SetStore(rs)
		defer rs.Close()
	} else {
		db, err := dbopen.Open(cfg.TraceDB, dbopen.WithMkdirAll())
		if err != nil {
			return err
		}
		defer db.Close()
		store := trace.NewStore(db)
		if err := store.Init(); err != nil {
			return err
		}
		trace.SetStore(store)
		defer store.Close()
	}

	srv := mcp.NewServer(serverImpl, nil)
	eng.RegisterMCP(srv, trace.Middleware())

	slog.Info("mcp stdio starting")
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func runHTTP(ctx context.Context, cfg *Config, eng *analyzer.Engine) error {
	db, err := dbopen.Open(cfg.TraceDB, dbopen.WithMkdirAll())
	if err != nil {
		return err
	}
	defer db.Close()
	store := trace.NewStore(db)
	if err := store.Init(); err != nil {
		return err
	}
	trace.SetStore(store)
	defer store.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(eng, store, cfg.APIToken),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
	return nil
}
