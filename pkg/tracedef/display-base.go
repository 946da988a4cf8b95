/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=DisplayBase -output=display-base_string.go

// Preferred display base values match the radix they denote.
const (
	DisplayBase_Binary      DisplayBase = 2
	DisplayBase_Octal       DisplayBase = 8
	DisplayBase_Decimal     DisplayBase = 10
	DisplayBase_Hexadecimal DisplayBase = 16
)

// Returns is base one of the supported radixes
func (b DisplayBase) IsValid() bool {
	switch b {
	case DisplayBase_Binary, DisplayBase_Octal, DisplayBase_Decimal, DisplayBase_Hexadecimal:
		return true
	}
	return false
}

func (b DisplayBase) MarshalText() ([]byte, error) {
	var s string
	if b.IsValid() {
		s = b.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(b), base)
	}
	return []byte(s), nil
}

// Renders a DisplayBase in human-readable form, without "DisplayBase_" prefix,
// suitable for debugging or error messages
func (b DisplayBase) TrimString() string {
	const pref = "DisplayBase_"
	return strings.TrimPrefix(b.String(), pref)
}
