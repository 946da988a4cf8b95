/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// Core of every concrete field class kind. Embedded, never used alone.
type fieldClass struct {
	kind             FieldClassKind
	frozen           bool
	partOfTraceClass bool
}

func makeFieldClass(tc ITraceClass, kind FieldClassKind) fieldClass {
	if tc == nil {
		panic(ErrMissed("trace class"))
	}
	return fieldClass{kind: kind}
}

func (fc *fieldClass) Kind() FieldClassKind { return fc.kind }

func (fc *fieldClass) IsFrozen() bool { return fc.frozen }

func (fc *fieldClass) IsPartOfTraceClass() bool { return fc.partOfTraceClass }

func (fc *fieldClass) base() *fieldClass { return fc }

// Overridden by container kinds to enumerate structurally owned children
// (structure members, variant options, array elements). Selector and
// length field classes are not structural children; they occur elsewhere
// in the same graph.
func (fc *fieldClass) eachChild(func(IFieldClass)) {}

// Guard called by every mutator
func (fc *fieldClass) panicIfFrozen() {
	if fc.frozen {
		panic(ErrFieldClassIsFrozen(fc))
	}
}

// Internal view of a field class, satisfied by every concrete kind
type iFieldClass interface {
	IFieldClass

	base() *fieldClass
	eachChild(func(IFieldClass))
}

// freeze marks fc and every structurally owned child permanently immutable.
// Idempotent; performs no allocation and cannot fail. Children are already
// frozen the instant they are bound to a parent, so the recursion usually
// stops one level down.
func freeze(fc IFieldClass) {
	f := fc.(iFieldClass)
	if f.base().frozen {
		return
	}
	f.base().frozen = true
	f.eachChild(freeze)
}

// Marks fc as exclusively owned by one trace class and recurses into every
// structurally owned child.
//
// # Panics:
//   - if fc is already part of a trace class.
func markAsPartOfTraceClass(fc IFieldClass) {
	f := fc.(iFieldClass)
	if f.base().partOfTraceClass {
		panic(ErrAlreadyExists("%s field class is already part of a trace class", fc.Kind().TrimString()))
	}
	markTree(f)
}

// Unlike markAsPartOfTraceClass, tolerates already-marked nodes: one field
// class may occur several times inside a single graph (a shared array
// element, for example) and must be marked exactly once.
func markTree(f iFieldClass) {
	if f.base().partOfTraceClass {
		return
	}
	f.base().partOfTraceClass = true
	f.eachChild(func(c IFieldClass) { markTree(c.(iFieldClass)) })
}
