// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/thozza/osbuild-otk/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultOtkCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "otk: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
