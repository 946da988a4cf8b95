/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
)

// # Implements:
//   - IRoot
type root struct {
	name string
	fc   IFieldClass
}

func (r *root) Name() string { return r.name }

func (r *root) FieldClass() IFieldClass { return r.fc }

// # Implements:
//   - ITraceClass
type traceClass struct {
	roots    named[*root]
	resolver FieldPathResolver
}

// Returns a new empty trace class
func New() ITraceClass {
	return &traceClass{roots: makeNamed[*root]()}
}

func (tc *traceClass) NewUnsignedInteger() IIntegerFieldClass {
	return newInteger(tc, FieldClassKind_UnsignedInteger)
}

func (tc *traceClass) NewSignedInteger() IIntegerFieldClass {
	return newInteger(tc, FieldClassKind_SignedInteger)
}

func (tc *traceClass) NewUnsignedEnumeration() IUnsignedEnumerationFieldClass {
	return newEnumeration[uint64](tc, FieldClassKind_UnsignedEnumeration)
}

func (tc *traceClass) NewSignedEnumeration() ISignedEnumerationFieldClass {
	return newEnumeration[int64](tc, FieldClassKind_SignedEnumeration)
}

func (tc *traceClass) NewReal() IRealFieldClass { return newReal(tc) }

func (tc *traceClass) NewString() IStringFieldClass { return newString(tc) }

func (tc *traceClass) NewStructure() IStructureFieldClass { return newStructure(tc) }

func (tc *traceClass) NewStaticArray(element IFieldClass, length uint64) IStaticArrayFieldClass {
	return newStaticArray(tc, element, length)
}

func (tc *traceClass) NewDynamicArray(element, lengthFC IFieldClass) IDynamicArrayFieldClass {
	return newDynamicArray(tc, element, lengthFC)
}

func (tc *traceClass) NewVariantWithoutSelector() IVariantWithoutSelectorFieldClass {
	return newVariantWithoutSelector(tc)
}

func (tc *traceClass) NewVariantWithUnsignedSelector(selector IFieldClass) IVariantWithUnsignedSelectorFieldClass {
	if (selector != nil) && !selector.Kind().IsUnsignedInteger() {
		panic(ErrIncompatible("selector field class is %s, expected an unsigned integer kind",
			selector.Kind().TrimString()))
	}
	return newVariantWithSelector[uint64](tc, FieldClassKind_VariantWithUnsignedSelector, selector)
}

func (tc *traceClass) NewVariantWithSignedSelector(selector IFieldClass) IVariantWithSignedSelectorFieldClass {
	if (selector != nil) && !selector.Kind().IsSignedInteger() {
		panic(ErrIncompatible("selector field class is %s, expected a signed integer kind",
			selector.Kind().TrimString()))
	}
	return newVariantWithSelector[int64](tc, FieldClassKind_VariantWithSignedSelector, selector)
}

func (tc *traceClass) SetFieldPathResolver(r FieldPathResolver) { tc.resolver = r }

func (tc *traceClass) AttachRoot(name string, fc IFieldClass) error {
	if fc == nil {
		panic(ErrMissed("root field class"))
	}
	if name == "" {
		panic(ErrMissed("root name"))
	}
	if _, ok := tc.roots.byName(name); ok {
		panic(ErrAlreadyExists("root «%s»", name))
	}
	if fc.IsPartOfTraceClass() {
		panic(ErrAlreadyExists("%s field class is already part of a trace class", fc.Kind().TrimString()))
	}

	if tc.resolver != nil {
		if err := tc.resolveFieldPaths(fc, fc, make(map[IFieldClass]bool)); err != nil {
			clearFieldPaths(fc, make(map[IFieldClass]bool))
			return err
		}
	}

	markAsPartOfTraceClass(fc)
	freeze(fc)
	tc.roots.append("root", &root{name: name, fc: fc})

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("root «%s» attached: %s field class", name, fc.Kind().TrimString()))
	}
	return nil
}

// Walks the graph below fc resolving variant selector and dynamic array
// length field paths. Runs before the graph is marked or frozen; on a
// resolver failure the caller clears the paths stored so far, leaving the
// graph exactly as it was before the attempt.
func (tc *traceClass) resolveFieldPaths(rootFC, fc IFieldClass, visited map[IFieldClass]bool) error {
	if visited[fc] {
		return nil
	}
	visited[fc] = true

	if pr, ok := fc.(pathResolvable); ok {
		if err := pr.resolveFieldPath(rootFC, tc.resolver); err != nil {
			return err
		}
	}

	var err error
	fc.(iFieldClass).eachChild(func(c IFieldClass) {
		if err == nil {
			err = tc.resolveFieldPaths(rootFC, c, visited)
		}
	})
	return err
}

// Discards every field path below fc. Called after a failed resolver walk.
func clearFieldPaths(fc IFieldClass, visited map[IFieldClass]bool) {
	if visited[fc] {
		return
	}
	visited[fc] = true

	if pr, ok := fc.(pathResolvable); ok {
		pr.clearFieldPath()
	}
	fc.(iFieldClass).eachChild(func(c IFieldClass) { clearFieldPaths(c, visited) })
}

func (tc *traceClass) Root(index int) IRoot {
	return tc.roots.at("root", index)
}

func (tc *traceClass) RootByName(name string) IRoot {
	if r, ok := tc.roots.byName(name); ok {
		return r
	}
	return nil
}

func (tc *traceClass) RootCount() int { return tc.roots.count() }

func (tc *traceClass) Roots(cb func(IRoot)) {
	tc.roots.each(func(r *root) { cb(r) })
}
