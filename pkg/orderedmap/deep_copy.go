// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

func (m *Map) DeepCopy() *Map {
	var newItems []MapItem
	for _, item := range m.items {
		newItems = append(newItems, MapItem{item.Key, DeepCopyValue(item.Value)})
	}
	return &Map{newItems}
}

// DeepCopyValue copies a tree node: maps and sequences are copied
// recursively, scalars are returned as is.
func DeepCopyValue(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case *Map:
		return typedVal.DeepCopy()
	case []interface{}:
		newVals := make([]interface{}, len(typedVal))
		for i, item := range typedVal {
			newVals[i] = DeepCopyValue(item)
		}
		return newVals
	default:
		return typedVal
	}
}
