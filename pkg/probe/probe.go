package probe

import (
	"context"
	"log/slog"

	"github.com/teslashibe/woundnative/internal/log"
)

// Report is the outcome of a single probe call.
type Report struct {
	Text     string
	Fallback bool
}

// String returns the report text.
func (r Report) String() string {
	return r.Text
}

// IsFallback reports whether text is the fallback message.
func IsFallback(text string) bool {
	return text == FallbackText
}

// Probe emits a Report per call. It holds no mutable state and is safe for
// concurrent use.
type Probe struct {
	provider Provider
	logger   *slog.Logger
}

// New creates a probe. A nil provider selects Default, a nil logger the
// package logger.
func New(p Provider, logger *slog.Logger) *Probe {
	if p == nil {
		p = Default()
	}
	if logger == nil {
		logger = log.L()
	}
	return &Probe{provider: p, logger: logger}
}

// Provider returns the provider backing the probe.
func (p *Probe) Provider() Provider {
	return p.provider
}

// Report queries the provider and logs the result once.
// An available provider that returns an empty version is reported as
// fallback so the text is never empty.
func (p *Probe) Report() Report {
	r := Report{Text: FallbackText, Fallback: true}
	if p.provider.Available() {
		if v := p.provider.Version(); v != "" {
			r = Report{Text: v}
		}
	}

	level := slog.LevelInfo
	if r.Fallback {
		level = slog.LevelWarn
	}
	p.logger.LogAttrs(context.Background(), level, r.Text,
		slog.String("provider", p.provider.Name()))

	return r
}

// Version returns Report().Text.
func (p *Probe) Version() string {
	return p.Report().Text
}
