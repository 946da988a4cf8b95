/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// # Implements:
//   - IStringFieldClass
type stringFC struct {
	fieldClass
}

func newString(tc ITraceClass) *stringFC {
	return &stringFC{fieldClass: makeFieldClass(tc, FieldClassKind_String)}
}
