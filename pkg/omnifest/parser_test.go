// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package omnifest_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thozza/osbuild-otk/pkg/omnifest"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
)

func TestFromBytesKeepsDocumentOrder(t *testing.T) {
	const data = `
otk.version: "1"
zebra: 1
apple:
  second: b
  first: a
list:
  - 3
  - two
  - true
`

	doc, err := omnifest.FromBytes([]byte(data), "input.yaml")
	require.NoError(t, err)

	out, err := json.Marshal(doc.Tree())
	require.NoError(t, err)

	expected := `{"otk.version":"1","zebra":1,"apple":{"second":"b","first":"a"},"list":[3,"two",true]}`
	assertEqual(t, expected, string(out))
}

func TestFromBytesScalarTypes(t *testing.T) {
	const data = `
otk.version: "1"
str: hello
int: 42
float: 1.25
bool: false
none: null
`

	doc, err := omnifest.FromBytes([]byte(data), "input.yaml")
	require.NoError(t, err)

	expectScalar := func(key string, expected interface{}) {
		val, found := doc.Tree().Get(key)
		require.True(t, found, key)
		assert.Equal(t, expected, val, key)
	}

	expectScalar("str", "hello")
	expectScalar("int", 42)
	expectScalar("float", 1.25)
	expectScalar("bool", false)
	expectScalar("none", nil)
}

func TestFromBytesResolvesAliases(t *testing.T) {
	const data = `
otk.version: "1"
base: &base
  name: common
copy: *base
`

	doc, err := omnifest.FromBytes([]byte(data), "input.yaml")
	require.NoError(t, err)

	copied, found := doc.Tree().Get("copy")
	require.True(t, found)

	name, found := copied.(*orderedmap.Map).Get("name")
	require.True(t, found)
	assert.Equal(t, "common", name)
}

func TestFromBytesRequiresMappingAtTopLevel(t *testing.T) {
	_, err := omnifest.FromBytes([]byte("- a\n- b\n"), "input.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping at the top level")
}

func TestFromBytesRequiresVersion(t *testing.T) {
	_, err := omnifest.FromBytes([]byte("name: no version here\n"), "input.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not declare 'otk.version'")
}

func TestFromBytesRejectsDuplicateKeys(t *testing.T) {
	const data = `
otk.version: "1"
name: first
name: second
`

	_, err := omnifest.FromBytes([]byte(data), "input.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key 'name'")
}

func TestTreeFromPathAllowsAnyTopLevel(t *testing.T) {
	path := writeFile(t, "include.yaml", "- 1\n- 2\n")

	tree, err := omnifest.TreeFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2}, tree)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0700))
	return path
}

func assertEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
