// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package otklog

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var levelColors = map[Level]*color.Color{
	LevelDebug: color.New(color.FgCyan),
	LevelInfo:  color.New(color.FgBlue),
	LevelWarn:  color.New(color.FgYellow),
	LevelError: color.New(color.FgRed),
}

// TextHandler writes one line per record with a colored level prefix.
type TextHandler struct {
	out io.Writer
}

var _ Handler = &TextHandler{}

func NewTextHandler(out io.Writer) *TextHandler {
	return &TextHandler{out}
}

func (h *TextHandler) Handle(rec Record) {
	prefix := rec.Level.String()
	if c, found := levelColors[rec.Level]; found {
		prefix = c.Sprint(prefix)
	}
	fmt.Fprintf(h.out, "%s: %s\n", prefix, rec.Message)
}

// JSONSeqHandler writes records as a JSON text sequence (RFC 7464): each
// record is preceded by an ASCII record separator and followed by a line
// feed. The identifier, when set, is included in every record.
type JSONSeqHandler struct {
	out        io.Writer
	identifier string
}

var _ Handler = &JSONSeqHandler{}

func NewJSONSeqHandler(out io.Writer, identifier string) *JSONSeqHandler {
	return &JSONSeqHandler{out, identifier}
}

const recordSeparator = 0x1e

type jsonSeqRecord struct {
	Time       string `json:"time"`
	Level      string `json:"level"`
	Message    string `json:"msg"`
	Identifier string `json:"identifier,omitempty"`
}

func (h *JSONSeqHandler) Handle(rec Record) {
	data, err := json.Marshal(jsonSeqRecord{
		Time:       rec.Time.Format(time.RFC3339Nano),
		Level:      rec.Level.String(),
		Message:    rec.Message,
		Identifier: h.identifier,
	})
	if err != nil {
		return
	}
	h.out.Write([]byte{recordSeparator})
	h.out.Write(data)
	h.out.Write([]byte{'\n'})
}
