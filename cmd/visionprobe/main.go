// visionprobe reports which OpenCV version this build links against.
//
// Without flags it prints the version (or the fallback text) and exits 0.
// With -serve it starts the diagnostics server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/woundnative/internal/config"
	"github.com/teslashibe/woundnative/internal/log"
	"github.com/teslashibe/woundnative/pkg/exports"
	"github.com/teslashibe/woundnative/pkg/probe"
	"github.com/teslashibe/woundnative/pkg/server"
)

type options struct {
	Serve bool
	Addr  string
	JSON  bool
	Debug bool
}

func main() {
	opts := parseFlags()

	level := config.LogLevel()
	if opts.Debug {
		level = "debug"
	}
	log.Init(level)

	p := probe.New(nil, log.L())

	if !opts.Serve {
		if err := printReport(os.Stdout, p, opts.JSON); err != nil {
			stdlog.Fatalf("❌ %v", err)
		}
		return
	}

	srv := server.New(server.Config{Addr: opts.Addr}, exports.Default(p), p, log.L())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	if err := srv.Start(); err != nil {
		stdlog.Fatalf("❌ Server error: %v", err)
	}
}

// parseFlags parses command line flags. Flags override environment.
func parseFlags() options {
	opts := options{}
	flag.BoolVar(&opts.Serve, "serve", false, "Start the diagnostics HTTP server")
	flag.StringVar(&opts.Addr, "addr", config.Addr(), "Diagnostics server address (overrides PROBE_ADDR)")
	flag.BoolVar(&opts.JSON, "json", false, "Print the report and build info as JSON")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable verbose debug logging")
	flag.Parse()
	return opts
}

// printReport writes one probe result to w.
func printReport(w io.Writer, p *probe.Probe, asJSON bool) error {
	r := p.Report()
	if !asJSON {
		_, err := fmt.Fprintln(w, r.Text)
		return err
	}

	out := struct {
		Version  string      `json:"version"`
		Fallback bool        `json:"fallback"`
		Build    probe.Build `json:"build"`
	}{r.Text, r.Fallback, probe.BuildInfo()}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
