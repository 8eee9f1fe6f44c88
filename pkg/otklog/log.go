// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package otklog implements leveled diagnostic logging for otk commands.
// Records go to a Handler which formats them either as colored plain text
// or as a JSON text sequence (RFC 7464) for machine consumption.
package otklog

import (
	"fmt"
	"io"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// LevelForVerbosity maps the count of '-v' flags onto a level. Without
// flags only warnings and errors are logged, '-v' adds info, '-vv' and
// above add debug.
func LevelForVerbosity(verbose int) Level {
	switch {
	case verbose <= 0:
		return LevelWarn
	case verbose == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}

type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

type Handler interface {
	Handle(rec Record)
}

type Logger struct {
	level   Level
	handler Handler
}

func NewLogger(level Level, handler Handler) *Logger {
	return &Logger{level, handler}
}

// NewNopLogger returns a logger that discards every record.
func NewNopLogger() *Logger {
	return NewLogger(LevelError, NewTextHandler(io.Discard))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.handler.Handle(Record{
		Time:    time.Now().UTC(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
}
