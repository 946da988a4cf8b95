/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"strconv"
	"strings"
)

//go:generate stringer -type=FieldClassKind -output=kind_string.go

const (
	// null - no-value kind
	FieldClassKind_null FieldClassKind = iota

	FieldClassKind_UnsignedInteger
	FieldClassKind_SignedInteger
	FieldClassKind_UnsignedEnumeration
	FieldClassKind_SignedEnumeration
	FieldClassKind_Real
	FieldClassKind_String
	FieldClassKind_Structure
	FieldClassKind_StaticArray
	FieldClassKind_DynamicArray
	FieldClassKind_VariantWithoutSelector
	FieldClassKind_VariantWithUnsignedSelector
	FieldClassKind_VariantWithSignedSelector

	FieldClassKind_Count
)

// Returns is kind an integer kind. Enumerations are integers too.
func (k FieldClassKind) IsInteger() bool {
	return (k == FieldClassKind_UnsignedInteger) ||
		(k == FieldClassKind_SignedInteger) ||
		k.IsEnumeration()
}

// Returns is kind an enumeration kind
func (k FieldClassKind) IsEnumeration() bool {
	return (k == FieldClassKind_UnsignedEnumeration) ||
		(k == FieldClassKind_SignedEnumeration)
}

// Returns is kind an unsigned integer or unsigned enumeration kind
func (k FieldClassKind) IsUnsignedInteger() bool {
	return (k == FieldClassKind_UnsignedInteger) ||
		(k == FieldClassKind_UnsignedEnumeration)
}

// Returns is kind a signed integer or signed enumeration kind
func (k FieldClassKind) IsSignedInteger() bool {
	return (k == FieldClassKind_SignedInteger) ||
		(k == FieldClassKind_SignedEnumeration)
}

// Returns is kind an array kind
func (k FieldClassKind) IsArray() bool {
	return (k == FieldClassKind_StaticArray) ||
		(k == FieldClassKind_DynamicArray)
}

// Returns is kind a variant kind
func (k FieldClassKind) IsVariant() bool {
	return (k == FieldClassKind_VariantWithoutSelector) ||
		k.IsVariantWithSelector()
}

// Returns is kind a selector-guarded variant kind
func (k FieldClassKind) IsVariantWithSelector() bool {
	return (k == FieldClassKind_VariantWithUnsignedSelector) ||
		(k == FieldClassKind_VariantWithSignedSelector)
}

func (k FieldClassKind) MarshalText() ([]byte, error) {
	var s string
	if k < FieldClassKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a FieldClassKind in human-readable form, without "FieldClassKind_" prefix,
// suitable for debugging or error messages
func (k FieldClassKind) TrimString() string {
	const pref = "FieldClassKind_"
	return strings.TrimPrefix(k.String(), pref)
}
