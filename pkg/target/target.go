// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package target selects a target entry out of a resolved omnifest tree
// and maps its kind onto the registered context constructor and renderer.
package target

import (
	"github.com/thozza/osbuild-otk/pkg/transform"
)

// Target renders a fully resolved target subtree into the native format
// of the image build tool identified by the kind.
type Target interface {
	AsString(ctx transform.Context, tree interface{}) (string, error)
}
