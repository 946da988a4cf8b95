/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// # Implements:
//   - IRealFieldClass
type real struct {
	fieldClass
	singlePrecision bool
}

func newReal(tc ITraceClass) *real {
	return &real{fieldClass: makeFieldClass(tc, FieldClassKind_Real)}
}

func (r *real) IsSinglePrecision() bool { return r.singlePrecision }

func (r *real) SetIsSinglePrecision(single bool) {
	r.panicIfFrozen()
	r.singlePrecision = single
}
