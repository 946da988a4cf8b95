/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

const (
	// Default bit width of a new integer field class
	DefaultFieldValueRange = 64

	// Widest supported field value range
	MaxFieldValueRange = 64
)

// # Implements:
//   - IIntegerFieldClass
type integer struct {
	fieldClass
	rng uint64
	// a field named base would shadow the promoted fieldClass.base
	displayBase DisplayBase
}

func newInteger(tc ITraceClass, kind FieldClassKind) *integer {
	return &integer{
		fieldClass:  makeFieldClass(tc, kind),
		rng:         DefaultFieldValueRange,
		displayBase: DisplayBase_Decimal,
	}
}

func (n *integer) FieldValueRange() uint64 { return n.rng }

func (n *integer) PreferredDisplayBase() DisplayBase { return n.displayBase }

func (n *integer) SetFieldValueRange(rng uint64) {
	n.panicIfFrozen()
	if (rng < 1) || (rng > MaxFieldValueRange) {
		panic(ErrOutOfBounds("field value range %d, supported is 1..%d", rng, MaxFieldValueRange))
	}
	n.rng = rng
}

func (n *integer) SetPreferredDisplayBase(base DisplayBase) {
	n.panicIfFrozen()
	if !base.IsValid() {
		panic(ErrInvalid("preferred display base %v", base))
	}
	n.displayBase = base
}
