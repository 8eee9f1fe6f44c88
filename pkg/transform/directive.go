// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"fmt"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/thozza/osbuild-otk/pkg/constant"
	"github.com/thozza/osbuild-otk/pkg/omnifest"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// DirectiveFunc executes one directive. The node argument has already been
// fully resolved, so handlers never see placeholders or nested directives.
// The returned node replaces the directive in the tree; nil drops it.
type DirectiveFunc func(ctx Context, node interface{}) (interface{}, error)

// The directive set is closed: handlers are looked up by exact key name
// and the table is never mutated after process start. The map is filled
// in init because include recurses through Resolve, which reads it.
var directives = map[string]DirectiveFunc{}

func init() {
	directives[constant.NameDefine] = define
	directives[constant.NameInclude] = include
	directives[constant.NameVersion] = declareVersion
}

// IsDirective reports whether a mapping key names an otk directive. Target
// entries share the reserved prefix but are handled by the resolver
// itself, not through the directive table.
func IsDirective(key string) bool {
	return strings.HasPrefix(key, constant.Prefix)
}

// define writes each entry of its mapping argument into the context.
func define(ctx Context, node interface{}) (interface{}, error) {
	defs, ok := node.(*orderedmap.Map)
	if !ok {
		return nil, fmt.Errorf("Expected '%s' to contain a mapping, got %s", constant.NameDefine, typeName(node))
	}

	defs.Iterate(func(name string, value interface{}) {
		ctx.Define(name, value)
	})

	return nil, nil
}

// include reads another document relative to the include root, resolves it
// in the current context and splices it in place of the directive.
func include(ctx Context, node interface{}) (interface{}, error) {
	path, ok := node.(string)
	if !ok {
		return nil, fmt.Errorf("Expected '%s' to contain a string path, got %s", constant.NameInclude, typeName(node))
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(ctx.IncludeRoot(), path)
	}

	ctx.Logger().Debugf("including '%s'", path)

	tree, err := omnifest.TreeFromPath(path)
	if err != nil {
		return nil, err
	}

	return Resolve(ctx, tree)
}

// maxSupportedVersion is the newest omnifest format this toolkit
// understands.
var maxSupportedVersion = goversion.Must(goversion.NewVersion("1"))

// declareVersion validates the omnifest format version declaration and
// drops it from the resolved tree.
func declareVersion(ctx Context, node interface{}) (interface{}, error) {
	str, ok := scalarString(node)
	if !ok || str == "" {
		return nil, fmt.Errorf("Expected '%s' to contain a version, got %s", constant.NameVersion, typeName(node))
	}

	declared, err := goversion.NewVersion(str)
	if err != nil {
		return nil, fmt.Errorf("Invalid '%s' value '%s': %s", constant.NameVersion, str, err)
	}

	if declared.GreaterThan(maxSupportedVersion) {
		return nil, fmt.Errorf("Omnifest version %s is not supported, newest supported version is %s", declared, maxSupportedVersion)
	}

	return nil, nil
}
