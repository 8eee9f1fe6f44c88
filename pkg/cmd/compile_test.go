// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thozza/osbuild-otk/pkg/cmd"
)

func writeOmnifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0700))
	return path
}

func newCompileOptions(stdout *bytes.Buffer) *cmd.CompileOptions {
	o := cmd.NewCompileOptions(cmd.NewDefaultOtkOptions())
	o.Stdout = stdout
	return o
}

func TestCompileSingleTargetToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.define:
  image_name: minimal
otk.target.osbuild.qcow2:
  pipelines:
    - name: build
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	require.NoError(t, o.Run([]string{input}))

	expected := strings.Join([]string{
		`{`,
		`  "version": "2",`,
		`  "pipelines": [`,
		`    {`,
		`      "name": "build"`,
		`    }`,
		`  ]`,
		`}`,
		``,
	}, "\n")
	assertEqual(t, expected, stdout.String())
}

func TestCompileWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.target.osbuild.qcow2:
  pipelines: []
`)
	output := filepath.Join(dir, "manifest.json")

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	require.NoError(t, o.Run([]string{input, output}))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "2"`)
}

func TestCompileNoTargets(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
name: no targets here
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	err := o.Run([]string{input})
	require.Error(t, err)
	assert.EqualError(t, err, "Omnifest does not contain any targets")
}

func TestCompileAmbiguousTargets(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.target.osbuild.qcow2:
  pipelines: []
otk.target.osbuild.ami:
  pipelines: []
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	err := o.Run([]string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple targets")
	assert.Contains(t, err.Error(), "osbuild.qcow2")
	assert.Contains(t, err.Error(), "osbuild.ami")
}

func TestCompileUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.target.osbuild.qcow2:
  pipelines: []
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)
	o.TargetName = "osbuild.iso"

	err := o.Run([]string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not contain target 'osbuild.iso'")
	assert.Contains(t, err.Error(), "osbuild.qcow2")
}

// Placeholders inside target entries are already substituted by the
// top-level pass; the second pass under the kind context then has nothing
// left to expand.
func TestCompileDefineVisibleInsideTarget(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.define:
  image_name: minimal
otk.target.osbuild.qcow2:
  pipelines:
    - name: ${image_name}
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	require.NoError(t, o.Run([]string{input}))
	assert.Contains(t, stdout.String(), `"name": "minimal"`)
}

func TestCompileUndefinedVariableFails(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.target.osbuild.qcow2:
  pipelines:
    - name: ${never_defined}
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	err := o.Run([]string{input})
	require.Error(t, err)
	assert.EqualError(t, err, "Undefined variable 'never_defined'")
	assert.Empty(t, stdout.String())
}

func TestCompileIncludeFromSiblingFile(t *testing.T) {
	dir := t.TempDir()
	writeOmnifest(t, dir, "pipelines.yaml", `
pipelines:
  - name: build
`)
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.target.osbuild.qcow2:
  otk.include: pipelines.yaml
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)

	require.NoError(t, o.Run([]string{input}))
	assert.Contains(t, stdout.String(), `"name": "build"`)
}

func TestCompileExternalsDisabledDumpsTree(t *testing.T) {
	dir := t.TempDir()
	input := writeOmnifest(t, dir, "input.yaml", `
otk.version: "1"
otk.define:
  name: minimal
image: ${name}
otk.target.osbuild.qcow2:
  otk.include: does-not-exist.yaml
`)

	var stdout bytes.Buffer
	o := newCompileOptions(&stdout)
	o.External = false

	require.NoError(t, o.Run([]string{input}))

	// the tree dump keeps the include unexpanded and skips target
	// selection entirely
	assert.Contains(t, stdout.String(), `"image": "minimal"`)
	assert.Contains(t, stdout.String(), `"otk.include": "does-not-exist.yaml"`)
}

func TestIdentifierRequiresJSONLog(t *testing.T) {
	globalOpts := cmd.NewDefaultOtkOptions()
	globalOpts.Identifier = "run-1"

	_, err := globalOpts.Logger()
	require.Error(t, err)
	assert.EqualError(t, err, "Cannot use '-i' without also using '-j'")

	globalOpts.JSONLog = true
	_, err = globalOpts.Logger()
	require.NoError(t, err)
}

func TestUnknownWarningRejected(t *testing.T) {
	globalOpts := cmd.NewDefaultOtkOptions()
	globalOpts.Warnings = []string{"no-such-warning"}

	_, err := globalOpts.Logger()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown warning 'no-such-warning'")
}

func TestCompileCmdArgValidation(t *testing.T) {
	root := cmd.NewDefaultOtkCmd()
	root.SetArgs([]string{"compile"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
}

func assertEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}
