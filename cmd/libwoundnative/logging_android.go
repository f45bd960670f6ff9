//go:build android

package main

/*
#cgo LDFLAGS: -llog
#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/teslashibe/woundnative/internal/config"
	"github.com/teslashibe/woundnative/internal/log"
)

func setupLogging() {
	log.SetHandler(&logcatHandler{level: log.ParseLevel(config.LogLevel())})
}

// logcatHandler writes slog records to the Android log buffer.
// The record message is written as-is; attributes are dropped.
type logcatHandler struct {
	level slog.Level
}

func (h *logcatHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *logcatHandler) Handle(_ context.Context, r slog.Record) error {
	tag := C.CString(log.Tag)
	defer C.free(unsafe.Pointer(tag))
	msg := C.CString(r.Message)
	defer C.free(unsafe.Pointer(msg))

	C.__android_log_write(priority(r.Level), tag, msg)
	return nil
}

func (h *logcatHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *logcatHandler) WithGroup(string) slog.Handler      { return h }

func priority(l slog.Level) C.int {
	switch {
	case l >= slog.LevelError:
		return C.int(C.ANDROID_LOG_ERROR)
	case l >= slog.LevelWarn:
		return C.int(C.ANDROID_LOG_WARN)
	case l >= slog.LevelInfo:
		return C.int(C.ANDROID_LOG_INFO)
	default:
		return C.int(C.ANDROID_LOG_DEBUG)
	}
}
