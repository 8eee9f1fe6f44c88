// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package omnifest loads serialized omnifests into document trees. The
// loader only parses; it performs no substitution and executes no
// directives.
package omnifest

import (
	"fmt"
	"os"

	"github.com/thozza/osbuild-otk/pkg/constant"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// Omnifest is a parsed omnifest document. Its tree is a mapping at the top
// level and declares the omnifest format version via the reserved
// 'otk.version' key.
type Omnifest struct {
	tree *orderedmap.Map
	path string
}

func FromPath(path string) (*Omnifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading omnifest '%s': %s", path, err)
	}
	return FromBytes(data, path)
}

func FromBytes(data []byte, path string) (*Omnifest, error) {
	node, err := parseBytes(data, path)
	if err != nil {
		return nil, err
	}

	tree, ok := node.(*orderedmap.Map)
	if !ok {
		return nil, fmt.Errorf("Expected omnifest '%s' to contain a mapping at the top level", path)
	}

	if _, found := tree.Get(constant.NameVersion); !found {
		return nil, fmt.Errorf("Omnifest '%s' does not declare '%s'", path, constant.NameVersion)
	}

	return &Omnifest{tree: tree, path: path}, nil
}

func (o *Omnifest) Tree() *orderedmap.Map { return o.tree }
func (o *Omnifest) Path() string          { return o.path }

// TreeFromPath loads an included document. Unlike a full omnifest it may
// hold any node at the top level and needs no version declaration.
func TreeFromPath(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Reading include '%s': %s", path, err)
	}
	return parseBytes(data, path)
}
