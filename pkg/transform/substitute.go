// Copyright 2026 The otk Authors.
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	placeholderRe      = regexp.MustCompile(`\$\{([^}]+)\}`)
	wholePlaceholderRe = regexp.MustCompile(`^\$\{([^}]+)\}$`)
)

// Substitute resolves '${name}' placeholders in text against the context.
//
// When the whole string is exactly one placeholder the bound value is
// returned as is, whatever its type, so a placeholder can expand into a
// sequence or a mapping. Otherwise placeholders are replaced left to right
// and every bound value must render as a scalar; a composite value fails
// with a TypeError whose text shows all substitutions made so far with the
// offending placeholder left as written.
//
// Substitute reads the context but never mutates it.
func Substitute(ctx Context, text string) (interface{}, error) {
	if match := wholePlaceholderRe.FindStringSubmatch(text); match != nil {
		return ctx.Variable(match[1])
	}

	data := text
	for _, match := range placeholderRe.FindAllStringSubmatch(text, -1) {
		value, err := ctx.Variable(match[1])
		if err != nil {
			return nil, err
		}

		str, ok := scalarString(value)
		if !ok {
			return nil, &TypeError{Text: data, Actual: typeName(value)}
		}

		// replace every occurrence: a bound value may itself contain
		// placeholder-shaped text which must not absorb a later
		// replacement
		data = strings.ReplaceAll(data, match[0], str)
	}

	return data, nil
}

func scalarString(value interface{}) (string, bool) {
	switch typedValue := value.(type) {
	case string:
		return typedValue, true
	case bool:
		return strconv.FormatBool(typedValue), true
	case int:
		return strconv.Itoa(typedValue), true
	case int64:
		return strconv.FormatInt(typedValue, 10), true
	case uint64:
		return strconv.FormatUint(typedValue, 10), true
	case float64:
		return strconv.FormatFloat(typedValue, 'g', -1, 64), true
	default:
		return "", false
	}
}
