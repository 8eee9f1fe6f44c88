// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package osbuild implements the 'osbuild' target kind: a fresh resolution
// context for osbuild target subtrees and the renderer producing an
// osbuild manifest.
package osbuild

import (
	"github.com/thozza/osbuild-otk/pkg/transform"
)

// Context resolves osbuild target subtrees. It starts from an empty
// variable namespace: top-level definitions are not inherited, only the
// include root and the policy flags carry over.
type Context struct {
	*transform.CommonContext
}

var _ transform.Context = &Context{}

func NewContext(common *transform.CommonContext) *Context {
	return &Context{
		transform.NewCommonContext(common.IncludeRoot(), common.Logger(), common.Opts()),
	}
}
