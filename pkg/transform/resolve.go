// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"fmt"
	"strings"

	"github.com/thozza/osbuild-otk/pkg/constant"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// Resolve walks a document tree in document order and returns a new tree
// with every placeholder substituted and every directive executed. The
// input tree is not modified.
//
// Resolution is a single pass: a variable defined by a directive is
// visible to every node visited after it, never to earlier ones.
func Resolve(ctx Context, node interface{}) (interface{}, error) {
	switch typedNode := node.(type) {
	case *orderedmap.Map:
		return resolveMap(ctx, typedNode)
	case []interface{}:
		return resolveSequence(ctx, typedNode)
	case string:
		return Substitute(ctx, typedNode)
	default:
		return typedNode, nil
	}
}

func resolveSequence(ctx Context, seq []interface{}) (interface{}, error) {
	result := make([]interface{}, 0, len(seq))
	for _, item := range seq {
		value, err := Resolve(ctx, item)
		if err != nil {
			return nil, err
		}
		result = append(result, value)
	}
	return result, nil
}

func resolveMap(ctx Context, tree *orderedmap.Map) (interface{}, error) {
	result := orderedmap.NewMap()

	for _, item := range tree.Items() {
		if !IsDirective(item.Key) {
			value, err := Resolve(ctx, item.Value)
			if err != nil {
				return nil, err
			}
			result.Set(item.Key, value)
			continue
		}

		// Target entries are plain subtrees during this pass; they are
		// extracted and re-resolved under a kind context later.
		if strings.HasPrefix(item.Key, constant.PrefixTarget) {
			value, err := Resolve(ctx, item.Value)
			if err != nil {
				return nil, err
			}
			result.Set(item.Key, value)
			continue
		}

		handler, found := directives[item.Key]
		if !found {
			return nil, &UnknownDirectiveError{Name: item.Key}
		}

		arg, err := Resolve(ctx, item.Value)
		if err != nil {
			return nil, err
		}

		// With externals disabled the include directive must not touch
		// the filesystem; it stays in the tree with its resolved
		// argument.
		if item.Key == constant.NameInclude && !ctx.ProcessExternals() {
			result.Set(item.Key, arg)
			continue
		}

		replacement, err := handler(ctx, arg)
		if err != nil {
			return nil, err
		}

		switch typedReplacement := replacement.(type) {
		case nil:

		case *orderedmap.Map:
			typedReplacement.Iterate(func(k string, v interface{}) {
				result.Set(k, v)
			})

		default:
			if tree.Len() == 1 && result.Len() == 0 {
				return typedReplacement, nil
			}
			return nil, fmt.Errorf("Cannot splice %s returned by '%s' into a mapping with other entries", typeName(replacement), item.Key)
		}
	}

	return result, nil
}
