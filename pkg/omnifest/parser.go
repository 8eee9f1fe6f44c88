// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package omnifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

// parseBytes decodes one YAML document into a tree of *orderedmap.Map,
// []interface{} and scalar values. Decoding goes through yaml.Node instead
// of plain maps to keep mapping keys in document order.
func parseBytes(data []byte, path string) (interface{}, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("Parsing '%s': %s", path, err)
	}

	if root.Kind == 0 {
		return nil, fmt.Errorf("Expected '%s' to contain a YAML document", path)
	}

	return valueForNode(&root, path)
}

func valueForNode(node *yaml.Node, path string) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("Expected '%s' to contain exactly one YAML document", path)
		}
		return valueForNode(node.Content[0], path)

	case yaml.MappingNode:
		result := orderedmap.NewMap()
		for i := 0; i < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]

			var key string
			err := keyNode.Decode(&key)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: expected a string key: %s", path, keyNode.Line, err)
			}

			if _, found := result.Get(key); found {
				return nil, fmt.Errorf("%s:%d: duplicate key '%s'", path, keyNode.Line, key)
			}

			value, err := valueForNode(valueNode, path)
			if err != nil {
				return nil, err
			}
			result.Set(key, value)
		}
		return result, nil

	case yaml.SequenceNode:
		result := []interface{}{}
		for _, item := range node.Content {
			value, err := valueForNode(item, path)
			if err != nil {
				return nil, err
			}
			result = append(result, value)
		}
		return result, nil

	case yaml.ScalarNode:
		var value interface{}
		err := node.Decode(&value)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: decoding scalar: %s", path, node.Line, err)
		}
		return value, nil

	case yaml.AliasNode:
		return valueForNode(node.Alias, path)

	default:
		return nil, fmt.Errorf("%s:%d: unsupported YAML node kind %d", path, node.Line, node.Kind)
	}
}
