/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

// # Implements:
//   - IVariantOption
type option struct {
	name string
	fc   IFieldClass
}

func (o *option) Name() string { return o.name }

func (o *option) FieldClass() IFieldClass { return o.fc }

// # Implements:
//   - IVariantSelectorOption
type selectorOption[T RangeBound] struct {
	option
	ranges *RangeSet[T]
}

func (o *selectorOption[T]) Ranges() *RangeSet[T] { return o.ranges }

// Shape-independent part of a variant field class
type variant struct {
	fieldClass
	options named[IVariantOption]
}

func makeVariant(tc ITraceClass, kind FieldClassKind) variant {
	return variant{
		fieldClass: makeFieldClass(tc, kind),
		options:    makeNamed[IVariantOption](),
	}
}

func (v *variant) Option(index int) IVariantOption {
	return v.options.at("variant option", index)
}

func (v *variant) OptionByName(name string) IVariantOption {
	if o, ok := v.options.byName(name); ok {
		return o
	}
	return nil
}

func (v *variant) OptionCount() int { return v.options.count() }

func (v *variant) Options(cb func(IVariantOption)) {
	v.options.each(cb)
}

func (v *variant) eachChild(cb func(IFieldClass)) {
	v.options.each(func(o IVariantOption) { cb(o.FieldClass()) })
}

// # Implements:
//   - IVariantWithoutSelectorFieldClass
type variantWithoutSelector struct {
	variant
}

func newVariantWithoutSelector(tc ITraceClass) *variantWithoutSelector {
	return &variantWithoutSelector{variant: makeVariant(tc, FieldClassKind_VariantWithoutSelector)}
}

func (v *variantWithoutSelector) AppendOption(name string, fc IFieldClass) {
	v.panicIfFrozen()
	if fc == nil {
		panic(ErrMissed("option field class"))
	}
	v.options.append("variant option", &option{name: name, fc: fc})
	freeze(fc)
}

// # Implements:
//   - IVariantWithSelectorFieldClass
//   - pathResolvable
type variantWithSelector[T RangeBound] struct {
	variant
	selector     IFieldClass
	selectorPath IFieldPath
}

func newVariantWithSelector[T RangeBound](tc ITraceClass, kind FieldClassKind, selector IFieldClass) *variantWithSelector[T] {
	if selector == nil {
		panic(ErrMissed("selector field class"))
	}
	v := &variantWithSelector[T]{
		variant:  makeVariant(tc, kind),
		selector: selector,
	}
	freeze(selector)
	return v
}

func (v *variantWithSelector[T]) AppendOption(name string, fc IFieldClass, ranges *RangeSet[T]) {
	v.panicIfFrozen()
	if fc == nil {
		panic(ErrMissed("option field class"))
	}
	if ranges == nil {
		panic(ErrMissed("option range set"))
	}
	if ranges.RangeCount() == 0 {
		panic(ErrInvalid("option «%s» range set is empty", name))
	}

	// the union of all option ranges must stay pairwise disjoint: a
	// selector value picks exactly one option
	union := RangeSet[T]{}
	v.options.each(func(o IVariantOption) {
		union.ranges = append(union.ranges, o.(*selectorOption[T]).ranges.ranges...)
	})
	union.ranges = append(union.ranges, ranges.ranges...)
	if union.HasOverlaps() {
		panic(ErrIncompatible("option «%s» ranges %v overlap existing option ranges", name, ranges))
	}

	v.options.append("variant option", &selectorOption[T]{
		option: option{name: name, fc: fc},
		ranges: ranges,
	})
	ranges.freeze()
	freeze(fc)
}

func (v *variantWithSelector[T]) SelectorFieldClass() IFieldClass { return v.selector }

func (v *variantWithSelector[T]) SelectorFieldPath() IFieldPath { return v.selectorPath }

func (v *variantWithSelector[T]) resolveFieldPath(root IFieldClass, resolver FieldPathResolver) error {
	p, err := resolver(root, v.selector)
	if err != nil {
		return ErrResolveFieldPath("variant selector", err)
	}
	v.selectorPath = p
	return nil
}

func (v *variantWithSelector[T]) clearFieldPath() { v.selectorPath = nil }
