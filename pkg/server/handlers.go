package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/teslashibe/woundnative/pkg/exports"
	"github.com/teslashibe/woundnative/pkg/probe"
)

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version  string `json:"version"`
	Fallback bool   `json:"fallback"`
}

// ExportResponse is the body of GET /api/exports/:name.
type ExportResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// handleVersion runs the probe once
func (s *Server) handleVersion(c *fiber.Ctx) error {
	r := s.probe.Report()
	s.logger.Debug("version served", "request_id", requestID(c), "fallback", r.Fallback)
	return c.JSON(VersionResponse{Version: r.Text, Fallback: r.Fallback})
}

func (s *Server) handleBuild(c *fiber.Ctx) error {
	return c.JSON(probe.BuildInfo())
}

func (s *Server) handleListExports(c *fiber.Ctx) error {
	return c.JSON(s.table.Names())
}

func (s *Server) handleCallExport(c *fiber.Ctx) error {
	name := c.Params("name")

	value, err := s.table.Call(name)
	if errors.Is(err, exports.ErrUnknownExport) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		s.logger.Error("export call failed", "request_id", requestID(c), "name", name, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(ExportResponse{Name: name, Value: value})
}
