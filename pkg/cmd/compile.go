// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thozza/osbuild-otk/pkg/omnifest"
	"github.com/thozza/osbuild-otk/pkg/orderedmap"
	"github.com/thozza/osbuild-otk/pkg/target"
	"github.com/thozza/osbuild-otk/pkg/transform"
)

type CompileOptions struct {
	GlobalOpts *OtkOptions

	External   bool
	TargetName string

	// Stdout is swapped out in tests.
	Stdout io.Writer
}

func NewCompileOptions(globalOpts *OtkOptions) *CompileOptions {
	return &CompileOptions{
		GlobalOpts: globalOpts,
		External:   true,
		Stdout:     os.Stdout,
	}
}

func NewCompileCmd(o *CompileOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile INPUT [OUTPUT]",
		Short: "Compile an omnifest into the native format of its target",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	cmd.Flags().BoolVar(&o.External, "external", true,
		"Process external directives. '--external=false' dumps the resolved tree instead of rendering a target")
	cmd.Flags().StringVarP(&o.TargetName, "target", "t", "",
		"Target to compile when the omnifest contains more than one")
	return cmd
}

func (o *CompileOptions) Run(args []string) error {
	log, err := o.GlobalOpts.Logger()
	if err != nil {
		return err
	}

	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	outputName := outputPath
	if outputName == "" {
		outputName = "STDOUT"
	}
	log.Infof("compiling omnifest '%s' to '%s'", inputPath, outputName)

	includeRoot := filepath.Dir(inputPath)
	log.Infof("include root is '%s'", includeRoot)

	ctx := transform.NewCommonContext(includeRoot, log, transform.CommonContextOpts{
		WarnDuplicateDefinitions: o.GlobalOpts.WarnDuplicateDefinitions(),
		ProcessExternals:         o.External,
	})

	doc, err := omnifest.FromPath(inputPath)
	if err != nil {
		return err
	}

	resolved, err := transform.Resolve(ctx, doc.Tree())
	if err != nil {
		return err
	}

	tree, ok := resolved.(*orderedmap.Map)
	if !ok {
		return fmt.Errorf("Omnifest '%s' did not resolve into a mapping", inputPath)
	}

	if !o.External {
		return o.dumpTree(tree)
	}

	selection, err := target.Select(tree, o.TargetName)
	if err != nil {
		return err
	}

	log.Debugf("selected target '%s' of kind '%s'", selection.Name, selection.Kind)

	kindCtx, err := target.NewKindContext(selection.Kind, ctx)
	if err != nil {
		return err
	}

	renderer, err := target.NewKindTarget(selection.Kind)
	if err != nil {
		return err
	}

	// This time we resolve under the kind context.
	subtree, err := transform.Resolve(kindCtx, selection.Tree)
	if err != nil {
		return err
	}

	output, err := renderer.AsString(kindCtx, subtree)
	if err != nil {
		return err
	}

	return o.write(outputPath, []byte(output+"\n"))
}

// dumpTree prints the top-level resolved tree as indented JSON. Used when
// external processing is off, so a compile can be inspected without any
// external effects.
func (o *CompileOptions) dumpTree(tree *orderedmap.Map) error {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("Marshaling the resolved tree: %s", err)
	}

	_, err = o.Stdout.Write(append(data, '\n'))
	return err
}

func (o *CompileOptions) write(path string, data []byte) error {
	if path == "" {
		_, err := o.Stdout.Write(data)
		return err
	}

	err := os.WriteFile(path, data, 0700)
	if err != nil {
		return fmt.Errorf("Writing output '%s': %s", path, err)
	}
	return nil
}
