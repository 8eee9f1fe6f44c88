// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"github.com/thozza/osbuild-otk/pkg/osbuild"
	"github.com/thozza/osbuild-otk/pkg/transform"
)

// The registries are populated here once and are read-only afterwards.
// Each kind needs an entry in both.
var (
	contextRegistry = map[string]func(*transform.CommonContext) transform.Context{
		"osbuild": func(common *transform.CommonContext) transform.Context {
			return osbuild.NewContext(common)
		},
	}

	targetRegistry = map[string]func() Target{
		"osbuild": func() Target { return osbuild.NewTarget() },
	}
)

// NewKindContext constructs the fresh context a target of the given kind
// is resolved under.
func NewKindContext(kind string, common *transform.CommonContext) (transform.Context, error) {
	newContext, found := contextRegistry[kind]
	if !found {
		return nil, &UnknownKindError{Kind: kind}
	}
	return newContext(common), nil
}

// NewKindTarget returns the renderer registered for the given kind.
func NewKindTarget(kind string) (Target, error) {
	newTarget, found := targetRegistry[kind]
	if !found {
		return nil, &UnknownKindError{Kind: kind}
	}
	return newTarget(), nil
}
