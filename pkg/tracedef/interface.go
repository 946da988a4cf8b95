/*
 * Copyright (c) 2024-present Tracekit authors
 */

// Package tracedef is a runtime type-description library for trace data.
//
// A producer declaratively builds a graph of field classes — descriptors
// for integers, enumerations, reals, strings, structures, variants and
// arrays — that says how trace records are laid out before any concrete
// value exists. Construction is single-owner and mutable; attaching a root
// graph to a trace class freezes it, after which it is safe for
// unsynchronized concurrent reads.
package tracedef

// Field class kind enumeration.
//
// Ref. kind.go for constants and methods
type FieldClassKind uint8

// Preferred display base of an integer field class.
//
// Ref. display-base.go for constants and methods
type DisplayBase uint8

// Field class: a type descriptor for trace field data, not itself a value.
//
// Ref. fieldclass.go for the shared core
type IFieldClass interface {
	// Field class kind, fixed at construction.
	Kind() FieldClassKind

	// Returns is the field class permanently immutable.
	//
	// A field class freezes when it is bound to a parent (member, option,
	// element) or when its graph is attached to a trace class. Frozen is
	// monotonic: no operation clears it.
	IsFrozen() bool

	// Returns is the field class owned by a trace class.
	//
	// Set when the root graph holding this field class is attached;
	// monotonic. An owned field class must never be attached again as the
	// root of another trace class.
	IsPartOfTraceClass() bool
}

// Integer field class (unsigned or signed).
//
// Ref to integer.go for implementation
type IIntegerFieldClass interface {
	IFieldClass

	// Bit width of the described field values, 1 to 64. Default is 64.
	FieldValueRange() uint64

	// Preferred radix for rendering field values. Default is decimal.
	PreferredDisplayBase() DisplayBase

	// Sets the bit width of the described field values.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if rng is not in 1..64.
	SetFieldValueRange(rng uint64)

	// Sets the preferred radix for rendering field values.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if base is not one of the DisplayBase_* constants.
	SetPreferredDisplayBase(base DisplayBase)
}

// Enumeration mapping: a label and the ranges of values it names.
//
// Ref to enum.go for implementation
type IEnumerationMapping[T RangeBound] interface {
	// Mapping label, non-empty, unique within the enumeration
	Label() string

	// Value ranges. Frozen; owned by the mapping since AddMapping.
	Ranges() *RangeSet[T]
}

// Enumeration field class: an integer field class with an ordered sequence
// of value→label mappings. Ranges of different mappings may overlap — one
// value may resolve to several labels.
//
// Ref to enum.go for implementation
type IEnumerationFieldClass[T RangeBound] interface {
	IIntegerFieldClass

	// Returns mapping by index.
	//
	// # Panics:
	//   - if index is out of bounds.
	Mapping(index int) IEnumerationMapping[T]

	// Finds mapping by label.
	//
	// Returns nil if not found.
	MappingByLabel(label string) IEnumerationMapping[T]

	// Returns mappings count
	MappingCount() int

	// Enumerates all mappings in add order.
	Mappings(cb func(IEnumerationMapping[T]))

	// Returns the labels of every mapping with at least one range
	// containing value, in mapping add order. An unmapped value yields an
	// empty result, not an error.
	MappingLabelsForValue(value T) []string

	// Adds a mapping. The range set is captured, not copied, and is frozen:
	// it is exclusively owned by the mapping from now on.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if label is empty,
	//   - if a mapping with label already exists,
	//   - if ranges is nil.
	AddMapping(label string, ranges *RangeSet[T])
}

type IUnsignedEnumerationFieldClass = IEnumerationFieldClass[uint64]

type ISignedEnumerationFieldClass = IEnumerationFieldClass[int64]

// Real field class.
//
// Ref to real.go for implementation
type IRealFieldClass interface {
	IFieldClass

	// Returns is single precision. Default is false (double precision).
	IsSinglePrecision() bool

	// Sets single or double precision.
	//
	// # Panics:
	//   - if the field class is frozen.
	SetIsSinglePrecision(single bool)
}

// String field class.
//
// Ref to string.go for implementation
type IStringFieldClass interface {
	IFieldClass
}

// Structure member: a named field class.
//
// Ref to structure.go for implementation
type IStructureMember interface {
	// Member name, unique within the structure
	Name() string

	// Member field class, frozen since the member was appended
	FieldClass() IFieldClass
}

// Structure field class: an ordered, name-indexed sequence of members.
//
// Ref to structure.go for implementation
type IStructureFieldClass interface {
	IFieldClass

	// Returns member by index.
	//
	// # Panics:
	//   - if index is out of bounds.
	Member(index int) IStructureMember

	// Finds member by name.
	//
	// Returns nil if not found.
	MemberByName(name string) IStructureMember

	// Returns members count
	MemberCount() int

	// Enumerates all members in add order.
	Members(cb func(IStructureMember))

	// Appends a member. fc freezes the instant it is bound, independent of
	// the structure's own freeze state.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if name is empty or already used,
	//   - if fc is nil.
	AppendMember(name string, fc IFieldClass)
}

// Variant option: a named field class, common to all variant shapes.
//
// Ref to variant.go for implementation
type IVariantOption interface {
	// Option name, unique within the variant
	Name() string

	// Option field class, frozen since the option was appended
	FieldClass() IFieldClass
}

// Selector-guarded variant option: additionally owns the selector value
// ranges that pick it.
//
// Ref to variant.go for implementation
type IVariantSelectorOption[T RangeBound] interface {
	IVariantOption

	// Selector values picking this option. Frozen; owned by the option.
	Ranges() *RangeSet[T]
}

// Queries common to all variant shapes.
//
// Ref to variant.go for implementation
type IVariantFieldClass interface {
	IFieldClass

	// Returns option by index.
	//
	// # Panics:
	//   - if index is out of bounds.
	Option(index int) IVariantOption

	// Finds option by name.
	//
	// Returns nil if not found.
	OptionByName(name string) IVariantOption

	// Returns options count
	OptionCount() int

	// Enumerates all options in add order.
	Options(cb func(IVariantOption))
}

// Variant field class without a selector.
//
// Ref to variant.go for implementation
type IVariantWithoutSelectorFieldClass interface {
	IVariantFieldClass

	// Appends an option. fc freezes the instant it is bound.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if name is empty or already used,
	//   - if fc is nil.
	AppendOption(name string, fc IFieldClass)
}

// Variant field class guarded by an integer or enumeration selector of
// matching signedness. Selector ranges across options are pairwise
// disjoint: a selector value deterministically picks one option.
//
// Ref to variant.go for implementation
type IVariantWithSelectorFieldClass[T RangeBound] interface {
	IVariantFieldClass

	// Selector field class, frozen since the variant was created
	SelectorFieldClass() IFieldClass

	// Locator of the selector within the root graph. Nil until the graph
	// is attached to a trace class with a field path resolver installed.
	SelectorFieldPath() IFieldPath

	// Appends an option guarded by ranges. The range set is captured, not
	// copied, and is frozen; fc freezes the instant it is bound.
	//
	// # Panics:
	//   - if the field class is frozen,
	//   - if name is empty or already used,
	//   - if fc or ranges is nil,
	//   - if ranges is empty,
	//   - if ranges intersects any existing option's ranges.
	AppendOption(name string, fc IFieldClass, ranges *RangeSet[T])
}

type IVariantWithUnsignedSelectorFieldClass = IVariantWithSelectorFieldClass[uint64]

type IVariantWithSignedSelectorFieldClass = IVariantWithSelectorFieldClass[int64]

// Queries common to both array shapes.
//
// Ref to array.go for implementation
type IArrayFieldClass interface {
	IFieldClass

	// Element field class, frozen since the array was created
	ElementFieldClass() IFieldClass
}

// Array field class with a length fixed at description time.
//
// Ref to array.go for implementation
type IStaticArrayFieldClass interface {
	IArrayFieldClass

	// Element count, zero included
	Length() uint64
}

// Array field class whose length is decoded from another field at decode
// time.
//
// Ref to array.go for implementation
type IDynamicArrayFieldClass interface {
	IArrayFieldClass

	// Length field class of unsigned integer kind, or nil when the length
	// locator is established by other means
	LengthFieldClass() IFieldClass

	// Locator of the length field within the root graph. Nil until the
	// graph is attached to a trace class with a field path resolver
	// installed.
	LengthFieldPath() IFieldPath
}

// Root field class attached to a trace class.
//
// Ref to traceclass.go for implementation
type IRoot interface {
	// Root name, unique within the trace class
	Name() string

	// Root field class, frozen and part of the trace class
	FieldClass() IFieldClass
}

// Trace class: construction context and exclusive owner of attached field
// class graphs.
//
// Ref to traceclass.go for implementation
type ITraceClass interface {
	// Constructors. Each panics if called on a nil trace class context.

	NewUnsignedInteger() IIntegerFieldClass
	NewSignedInteger() IIntegerFieldClass
	NewUnsignedEnumeration() IUnsignedEnumerationFieldClass
	NewSignedEnumeration() ISignedEnumerationFieldClass
	NewReal() IRealFieldClass
	NewString() IStringFieldClass
	NewStructure() IStructureFieldClass

	// Returns a new static array of element field class. element freezes
	// immediately.
	//
	// # Panics:
	//   - if element is nil.
	NewStaticArray(element IFieldClass, length uint64) IStaticArrayFieldClass

	// Returns a new dynamic array of element field class. lengthFC is
	// optional; when given it must be of unsigned integer kind. element
	// and lengthFC freeze immediately.
	//
	// # Panics:
	//   - if element is nil,
	//   - if lengthFC is given and is not of unsigned integer kind.
	NewDynamicArray(element, lengthFC IFieldClass) IDynamicArrayFieldClass

	NewVariantWithoutSelector() IVariantWithoutSelectorFieldClass

	// Returns a new variant guarded by selector, which must be of unsigned
	// integer or unsigned enumeration kind. selector freezes immediately.
	//
	// # Panics:
	//   - if selector is nil,
	//   - if selector kind does not match.
	NewVariantWithUnsignedSelector(selector IFieldClass) IVariantWithUnsignedSelectorFieldClass

	// Signed counterpart of NewVariantWithUnsignedSelector.
	NewVariantWithSignedSelector(selector IFieldClass) IVariantWithSignedSelectorFieldClass

	// Installs the external field path resolver consulted during
	// AttachRoot. Without a resolver attached graphs carry nil field paths.
	SetFieldPathResolver(r FieldPathResolver)

	// Attaches fc as a named root: resolves selector and length field
	// paths, marks the whole graph part of this trace class, freezes it.
	// A resolver failure is returned before any marking or freezing
	// happened; the graph stays reusable.
	//
	// # Panics:
	//   - if fc is nil,
	//   - if name is empty or already used,
	//   - if fc is already part of a trace class.
	AttachRoot(name string, fc IFieldClass) error

	// Returns root by index.
	//
	// # Panics:
	//   - if index is out of bounds.
	Root(index int) IRoot

	// Finds root by name.
	//
	// Returns nil if not found.
	RootByName(name string) IRoot

	// Returns roots count
	RootCount() int

	// Enumerates all roots in attach order.
	Roots(cb func(IRoot))
}
