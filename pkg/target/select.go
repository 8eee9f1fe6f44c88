// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"fmt"
	"strings"

	"github.com/thozza/osbuild-otk/pkg/constant"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// Selection is one target entry extracted from a resolved omnifest tree.
// Tree is a deep copy, detached from the tree it was selected from.
type Selection struct {
	Name string
	Kind string
	Tree interface{}
}

// Select partitions the top-level entries of a resolved tree into target
// entries and the rest, then picks the target named by requested. With an
// empty requested name a sole target is picked implicitly; anything else
// is an error listing the candidates.
func Select(tree *orderedmap.Map, requested string) (Selection, error) {
	available := orderedmap.NewMap()
	for _, item := range tree.Items() {
		if strings.HasPrefix(item.Key, constant.PrefixTarget) {
			name := strings.TrimPrefix(item.Key, constant.PrefixTarget)
			available.Set(name, orderedmap.DeepCopyValue(item.Value))
		}
	}

	names := available.Keys()

	if len(names) == 0 {
		return Selection{}, &NoTargetsError{}
	}

	if requested == "" {
		if len(names) > 1 {
			return Selection{}, &AmbiguousTargetError{Available: names}
		}
		requested = names[0]
	}

	subtree, found := available.Get(requested)
	if !found {
		return Selection{}, &UnknownTargetError{Requested: requested, Available: names}
	}

	return Selection{
		Name: requested,
		Kind: strings.SplitN(requested, ".", 2)[0],
		Tree: subtree,
	}, nil
}

type NoTargetsError struct{}

func (e *NoTargetsError) Error() string {
	return "Omnifest does not contain any targets"
}

type AmbiguousTargetError struct {
	Available []string
}

func (e *AmbiguousTargetError) Error() string {
	return fmt.Sprintf("Omnifest contains multiple targets, select one with '-t': %s", strings.Join(e.Available, ", "))
}

type UnknownTargetError struct {
	Requested string
	Available []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("Omnifest does not contain target '%s', available targets: %s", e.Requested, strings.Join(e.Available, ", "))
}

type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("No context or target registered for kind '%s'", e.Kind)
}
