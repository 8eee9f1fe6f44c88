// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package osbuild

import (
	"encoding/json"
	"fmt"

	"github.com/thozza/osbuild-otk/pkg/orderedmap"
	"github.com/thozza/osbuild-otk/pkg/transform"
)

// manifestVersion is the osbuild manifest format emitted by the renderer.
const manifestVersion = "2"

// Target renders a resolved osbuild target subtree into an osbuild
// manifest in JSON.
type Target struct{}

func NewTarget() *Target { return &Target{} }

func (t *Target) AsString(ctx transform.Context, tree interface{}) (string, error) {
	subtree, ok := tree.(*orderedmap.Map)
	if !ok {
		return "", fmt.Errorf("Expected the osbuild target to contain a mapping")
	}

	manifest := orderedmap.NewMap()
	manifest.Set("version", manifestVersion)

	pipelines, found := subtree.Get("pipelines")
	if !found {
		pipelines = []interface{}{}
	}
	manifest.Set("pipelines", pipelines)

	if sources, found := subtree.Get("sources"); found {
		manifest.Set("sources", sources)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("Marshaling the osbuild manifest: %s", err)
	}

	return string(data), nil
}
