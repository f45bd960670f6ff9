// libwoundnative is the native library loaded by the wound-care Android app.
//
// Build with:
//
//	CGO_ENABLED=1 go build -buildmode=c-shared -tags opencv -o libwoundnative.so ./cmd/libwoundnative
//
// Dropping -tags opencv produces a library that reports the fallback text.
package main

import (
	"sync"

	"github.com/teslashibe/woundnative/internal/log"
	"github.com/teslashibe/woundnative/pkg/exports"
	"github.com/teslashibe/woundnative/pkg/probe"
)

var (
	table     *exports.Table
	tableOnce sync.Once
)

// bridgeTable returns the process-wide export table.
func bridgeTable() *exports.Table {
	tableOnce.Do(func() {
		setupLogging()
		table = exports.Default(probe.New(nil, log.L()))
	})
	return table
}

// call resolves name, turning lookup failures into text so native callers
// always receive a string.
func call(name string) string {
	v, err := bridgeTable().Call(name)
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}

func main() {}
