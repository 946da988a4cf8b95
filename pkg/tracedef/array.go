/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// Shape-independent part of an array field class
type array struct {
	fieldClass
	element IFieldClass
}

func makeArray(tc ITraceClass, kind FieldClassKind, element IFieldClass) array {
	if element == nil {
		panic(ErrMissed("element field class"))
	}
	a := array{
		fieldClass: makeFieldClass(tc, kind),
		element:    element,
	}
	freeze(element)
	return a
}

func (a *array) ElementFieldClass() IFieldClass { return a.element }

func (a *array) eachChild(cb func(IFieldClass)) { cb(a.element) }

// # Implements:
//   - IStaticArrayFieldClass
type staticArray struct {
	array
	length uint64
}

func newStaticArray(tc ITraceClass, element IFieldClass, length uint64) *staticArray {
	return &staticArray{
		array:  makeArray(tc, FieldClassKind_StaticArray, element),
		length: length,
	}
}

func (a *staticArray) Length() uint64 { return a.length }

// # Implements:
//   - IDynamicArrayFieldClass
//   - pathResolvable
type dynamicArray struct {
	array
	lengthFC   IFieldClass
	lengthPath IFieldPath
}

func newDynamicArray(tc ITraceClass, element, lengthFC IFieldClass) *dynamicArray {
	a := &dynamicArray{
		array: makeArray(tc, FieldClassKind_DynamicArray, element),
	}
	if lengthFC != nil {
		if !lengthFC.Kind().IsUnsignedInteger() {
			panic(ErrIncompatible("length field class is %s, expected an unsigned integer kind",
				lengthFC.Kind().TrimString()))
		}
		a.lengthFC = lengthFC
		freeze(lengthFC)
	}
	return a
}

func (a *dynamicArray) LengthFieldClass() IFieldClass { return a.lengthFC }

func (a *dynamicArray) LengthFieldPath() IFieldPath { return a.lengthPath }

func (a *dynamicArray) resolveFieldPath(root IFieldClass, resolver FieldPathResolver) error {
	if a.lengthFC == nil {
		return nil
	}
	p, err := resolver(root, a.lengthFC)
	if err != nil {
		return ErrResolveFieldPath("dynamic array length", err)
	}
	a.lengthPath = p
	return nil
}

func (a *dynamicArray) clearFieldPath() { a.lengthPath = nil }
