// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"fmt"

	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// TypeError reports a placeholder that resolved to a composite value in
// the middle of a string. Text carries the input with every placeholder
// before the offending one already substituted and the offending one left
// as written.
type TypeError struct {
	Text   string
	Actual string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("String '%s' resolves to an incorrect type, expected bool, int, float, or string but got %s", e.Text, e.Actual)
}

// UndefinedVariableError reports a placeholder referencing a name absent
// from the context.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}

// UnknownDirectiveError reports a reserved-prefix key with no registered
// handler.
type UnknownDirectiveError struct {
	Name string
}

func (e *UnknownDirectiveError) Error() string {
	return fmt.Sprintf("Unknown directive '%s'", e.Name)
}

// typeName describes a tree node's type in error messages.
func typeName(val interface{}) string {
	switch val.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case []interface{}:
		return "sequence"
	case *orderedmap.Map:
		return "mapping"
	default:
		return fmt.Sprintf("%T", val)
	}
}
