//go:build !android

package main

import (
	"github.com/teslashibe/woundnative/internal/config"
	"github.com/teslashibe/woundnative/internal/log"
)

func setupLogging() {
	log.Init(config.LogLevel())
}
