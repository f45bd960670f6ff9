// Package exports maps stable external names to string accessors.
//
// Native callers resolve functionality by name through a Table instead of
// depending on symbol names derived from a managed class.
package exports

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/teslashibe/woundnative/pkg/probe"
)

// Well-known export names.
const (
	OpenCVVersion  = "opencv.version"
	OpenCVFallback = "opencv.version.fallback"
	BridgeBuild    = "bridge.build"
)

// Func is an exported accessor.
type Func func() string

// Table is a concurrency-safe name to Func registry.
type Table struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{funcs: make(map[string]Func)}
}

// Register adds fn under name.
func (t *Table) Register(name string, fn Func) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNilFunc, name)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.funcs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	t.funcs[name] = fn
	return nil
}

// MustRegister is Register that panics on error.
func (t *Table) MustRegister(name string, fn Func) {
	if err := t.Register(name, fn); err != nil {
		panic(err)
	}
}

// Call invokes the function registered under name.
func (t *Table) Call(name string) (string, error) {
	t.mu.RLock()
	fn, ok := t.funcs[name]
	t.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownExport, name)
	}
	return fn(), nil
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	t.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Default builds the table the native bridge exposes.
func Default(p *probe.Probe) *Table {
	t := NewTable()
	t.MustRegister(OpenCVVersion, p.Version)
	t.MustRegister(OpenCVFallback, func() string {
		return strconv.FormatBool(p.Report().Fallback)
	})
	t.MustRegister(BridgeBuild, func() string {
		b, err := json.Marshal(probe.BuildInfo())
		if err != nil {
			return "{}"
		}
		return string(b)
	})
	return t
}
