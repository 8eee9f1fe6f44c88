// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package transform resolves omnifest document trees: it substitutes
// '${name}' placeholders against a Context and executes otk directives
// until the tree is variable-free and directive-free.
package transform

import (
	"github.com/thozza/osbuild-otk/pkg/otklog"
)

// Context carries the symbol table and the resolution-time configuration
// for one resolution pass. Directive handlers mutate it through Define;
// substitution only reads it.
type Context interface {
	Define(name string, value interface{})
	Variable(name string) (interface{}, error)

	IncludeRoot() string
	ProcessExternals() bool
	Logger() *otklog.Logger
}

type CommonContextOpts struct {
	// WarnDuplicateDefinitions makes redefining a variable log a warning.
	// Redefinition is never an error either way; the last definition wins.
	WarnDuplicateDefinitions bool

	// ProcessExternals enables directives with external effects
	// (otk.include). When false, no file outside the input omnifest is
	// ever read and include directives stay in the tree unexpanded.
	ProcessExternals bool
}

type CommonContext struct {
	includeRoot string
	variables   map[string]interface{}
	opts        CommonContextOpts
	log         *otklog.Logger
}

var _ Context = &CommonContext{}

func NewCommonContext(includeRoot string, log *otklog.Logger, opts CommonContextOpts) *CommonContext {
	return &CommonContext{
		includeRoot: includeRoot,
		variables:   map[string]interface{}{},
		opts:        opts,
		log:         log,
	}
}

func (c *CommonContext) Define(name string, value interface{}) {
	if _, defined := c.variables[name]; defined && c.opts.WarnDuplicateDefinitions {
		c.log.Warnf("duplicate definition of variable '%s'", name)
	}
	c.variables[name] = value
}

func (c *CommonContext) Variable(name string) (interface{}, error) {
	value, found := c.variables[name]
	if !found {
		return nil, &UndefinedVariableError{Name: name}
	}
	return value, nil
}

func (c *CommonContext) IncludeRoot() string    { return c.includeRoot }
func (c *CommonContext) ProcessExternals() bool { return c.opts.ProcessExternals }
func (c *CommonContext) Logger() *otklog.Logger { return c.log }

// Opts exposes the configuration so kind-specific contexts can be
// constructed with the same policy as the top-level one.
func (c *CommonContext) Opts() CommonContextOpts { return c.opts }
