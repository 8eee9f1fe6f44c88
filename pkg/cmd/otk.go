// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/thozza/osbuild-otk/pkg/otklog"
	"github.com/thozza/osbuild-otk/pkg/version"
)

const warnDuplicateDefinition = "duplicate-definition"

type OtkOptions struct {
	Verbose    int
	JSONLog    bool
	Identifier string
	Warnings   []string
}

func NewDefaultOtkOptions() *OtkOptions {
	return &OtkOptions{}
}

func NewDefaultOtkCmd() *cobra.Command {
	return NewOtkCmd(NewDefaultOtkOptions())
}

func NewOtkCmd(o *OtkOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "otk",
		Version: version.Version,
		Short:   "otk is the omnifest toolkit",
		Long: `otk is the omnifest toolkit. A program to work with omnifest inputs
and translate them into the native formats for image build tooling.`,
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	pf := cmd.PersistentFlags()
	pf.CountVarP(&o.Verbose, "verbose", "v",
		"Set verbosity. Can be passed multiple times to be more verbose")
	pf.BoolVarP(&o.JSONLog, "json", "j", false,
		"Set log format to JSON-seq records with ASCII record separators on stderr")
	pf.StringVarP(&o.Identifier, "identifier", "i", "",
		"Identifier to include in all log records. Can only be used together with '-j'")
	pf.StringSliceVarP(&o.Warnings, "warn", "w", nil,
		fmt.Sprintf("Enable warnings ('%s'). Can be passed multiple times", warnDuplicateDefinition))

	cmd.AddCommand(NewCompileCmd(NewCompileOptions(o)))
	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

// Logger builds the process logger from the global flags. An identifier
// without JSON logging is a configuration error.
func (o *OtkOptions) Logger() (*otklog.Logger, error) {
	if o.Identifier != "" && !o.JSONLog {
		return nil, fmt.Errorf("Cannot use '-i' without also using '-j'")
	}

	for _, warning := range o.Warnings {
		if warning != warnDuplicateDefinition {
			return nil, fmt.Errorf("Unknown warning '%s'", warning)
		}
	}

	var handler otklog.Handler
	if o.JSONLog {
		handler = otklog.NewJSONSeqHandler(os.Stderr, o.Identifier)
	} else {
		handler = otklog.NewTextHandler(os.Stderr)
	}

	return otklog.NewLogger(otklog.LevelForVerbosity(o.Verbose), handler), nil
}

func (o *OtkOptions) WarnDuplicateDefinitions() bool {
	for _, warning := range o.Warnings {
		if warning == warnDuplicateDefinition {
			return true
		}
	}
	return false
}
