// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is a zap sugared logger carrying a security event sub-logger.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a JSON logger writing to stdout at the given level.
// Unknown levels fall back to error.
func NewLogger(l string) *Logger {
	level, err := zapcore.ParseLevel(strings.ToLower(l))
	if err != nil {
		level = zapcore.ErrorLevel
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.Development = level == zapcore.DebugLevel

	base, err := c.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: base.Sugar(),
		security:      newSecurityLogger(base),
	}
}
