/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import "golang.org/x/exp/slices"

// # Implements:
//   - IEnumerationMapping
type mapping[T RangeBound] struct {
	label  string
	ranges *RangeSet[T]
}

func (m *mapping[T]) Label() string { return m.label }

func (m *mapping[T]) Ranges() *RangeSet[T] { return m.ranges }

// # Implements:
//   - IEnumerationFieldClass
type enumeration[T RangeBound] struct {
	integer
	mappings []*mapping[T]
}

func newEnumeration[T RangeBound](tc ITraceClass, kind FieldClassKind) *enumeration[T] {
	return &enumeration[T]{integer: *newInteger(tc, kind)}
}

func (e *enumeration[T]) AddMapping(label string, ranges *RangeSet[T]) {
	e.panicIfFrozen()
	if label == "" {
		panic(ErrMissed("mapping label"))
	}
	if ranges == nil {
		panic(ErrMissed("mapping range set"))
	}
	if slices.ContainsFunc(e.mappings, func(m *mapping[T]) bool { return m.label == label }) {
		panic(ErrAlreadyExists("enumeration mapping «%s»", label))
	}
	e.mappings = append(e.mappings, &mapping[T]{label: label, ranges: ranges})
	ranges.freeze()
}

func (e *enumeration[T]) Mapping(index int) IEnumerationMapping[T] {
	if (index < 0) || (index >= len(e.mappings)) {
		panic(ErrOutOfBounds("mapping index %d, enumeration has %d mappings", index, len(e.mappings)))
	}
	return e.mappings[index]
}

func (e *enumeration[T]) MappingByLabel(label string) IEnumerationMapping[T] {
	for _, m := range e.mappings {
		if m.label == label {
			return m
		}
	}
	return nil
}

func (e *enumeration[T]) MappingCount() int { return len(e.mappings) }

func (e *enumeration[T]) Mappings(cb func(IEnumerationMapping[T])) {
	for _, m := range e.mappings {
		cb(m)
	}
}

func (e *enumeration[T]) MappingLabelsForValue(value T) []string {
	labels := make([]string, 0, len(e.mappings))
	for _, m := range e.mappings {
		if m.ranges.Contains(value) {
			labels = append(labels, m.label)
		}
	}
	return labels
}
