// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

// Package constant holds the reserved key names that mark otk directives
// inside an omnifest.
package constant

const (
	// Prefix marks a mapping key as an otk directive.
	Prefix = "otk."

	// PrefixTarget marks a top-level mapping key as a target entry. The
	// remainder of the key names the target; the part before the first
	// '.' of that name selects the kind.
	PrefixTarget = Prefix + "target."

	NameDefine  = Prefix + "define"
	NameInclude = Prefix + "include"
	NameVersion = Prefix + "version"
)
