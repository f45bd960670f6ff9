// Package server exposes probe diagnostics over HTTP.
package server

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/teslashibe/woundnative/internal/config"
	"github.com/teslashibe/woundnative/pkg/exports"
	"github.com/teslashibe/woundnative/pkg/probe"
)

const requestIDKey = "request_id"

// Config holds server configuration.
type Config struct {
	Addr string // Listen address, e.g. ":8089"
}

// DefaultConfig returns the environment-derived config.
func DefaultConfig() Config {
	return Config{Addr: config.Addr()}
}

// Server is the diagnostics server.
type Server struct {
	app    *fiber.App
	cfg    Config
	table  *exports.Table
	probe  *probe.Probe
	logger *slog.Logger
}

// New creates a server serving p and table.
func New(cfg Config, table *exports.Table, p *probe.Probe, logger *slog.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultAddr
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:    cfg,
		table:  table,
		probe:  p,
		logger: logger,
	}

	app := fiber.New(fiber.Config{
		AppName:               "woundnative probe",
		DisableStartupMessage: true,
	})

	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))

	api := app.Group("/api")
	api.Get("/version", s.handleVersion)
	api.Get("/build", s.handleBuild)
	api.Get("/exports", s.handleListExports)
	api.Get("/exports/:name", s.handleCallExport)

	s.app = app
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured address. It blocks until Shutdown.
func (s *Server) Start() error {
	s.logger.Info("diagnostics server listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
