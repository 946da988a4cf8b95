/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_UnsignedEnumeration(t *testing.T) {
	require := require.New(t)

	tc := New()

	e := tc.NewUnsignedEnumeration()
	require.Equal(FieldClassKind_UnsignedEnumeration, e.Kind())
	require.Equal(uint64(DefaultFieldValueRange), e.FieldValueRange(), "enumeration must inherit integer defaults")

	e.AddMapping("LOW", NewUnsignedRangeSet().AddRange(0, 9))
	e.AddMapping("HIGH", NewUnsignedRangeSet().AddRange(10, 20))

	t.Run("must be ok to resolve labels by value", func(t *testing.T) {
		require.Equal([]string{"LOW"}, e.MappingLabelsForValue(5))
		require.Equal([]string{"HIGH"}, e.MappingLabelsForValue(15))
		require.Empty(e.MappingLabelsForValue(50), "unmapped value is not an error")

		t.Run("must be idempotent", func(t *testing.T) {
			require.Equal(e.MappingLabelsForValue(5), e.MappingLabelsForValue(5))
		})
	})

	t.Run("must be ok to inspect mappings", func(t *testing.T) {
		require.Equal(2, e.MappingCount())
		require.Equal("LOW", e.Mapping(0).Label())
		require.Equal("HIGH", e.Mapping(1).Label())

		m := e.MappingByLabel("LOW")
		require.NotNil(m)
		require.True(m.Ranges().Contains(9))
		require.True(m.Ranges().IsFrozen(), "range set must be frozen once captured")

		require.Nil(e.MappingByLabel("absent"))

		cnt := 0
		e.Mappings(func(IEnumerationMapping[uint64]) { cnt++ })
		require.Equal(2, cnt)
	})

	t.Run("overlapping ranges across mappings are permitted", func(t *testing.T) {
		e.AddMapping("NONZERO", NewUnsignedRangeSet().AddRange(1, 20))
		require.Equal([]string{"LOW", "NONZERO"}, e.MappingLabelsForValue(5), "labels come in mapping add order")
		require.Equal([]string{"HIGH", "NONZERO"}, e.MappingLabelsForValue(15))
	})

	t.Run("must be panics", func(t *testing.T) {
		t.Run("if label is duplicated", func(t *testing.T) {
			cnt := e.MappingCount()
			require.Panics(func() { e.AddMapping("LOW", NewUnsignedRangeSet().AddRange(30, 40)) })
			require.Equal(cnt, e.MappingCount(), "failed add must not change the mapping set")
		})

		t.Run("if label is empty", func(t *testing.T) {
			require.Panics(func() { e.AddMapping("", NewUnsignedRangeSet().AddRange(0, 1)) })
		})

		t.Run("if range set is nil", func(t *testing.T) {
			require.Panics(func() { e.AddMapping("NIL", nil) })
		})

		t.Run("if mapping index is out of bounds", func(t *testing.T) {
			require.Panics(func() { e.Mapping(e.MappingCount()) })
		})

		t.Run("if add mapping to frozen enumeration", func(t *testing.T) {
			s := tc.NewStructure()
			s.AppendMember("e", e)
			require.True(e.IsFrozen())
			require.Panics(func() { e.AddMapping("LATE", NewUnsignedRangeSet().AddRange(90, 99)) })
		})
	})
}

func Test_SignedEnumeration(t *testing.T) {
	require := require.New(t)

	tc := New()

	e := tc.NewSignedEnumeration()
	require.Equal(FieldClassKind_SignedEnumeration, e.Kind())

	e.AddMapping("NEG", NewSignedRangeSet().AddRange(-100, -1))
	e.AddMapping("POS", NewSignedRangeSet().AddRange(1, 100))

	require.Equal([]string{"NEG"}, e.MappingLabelsForValue(-50))
	require.Equal([]string{"POS"}, e.MappingLabelsForValue(50))
	require.Empty(e.MappingLabelsForValue(0))

	t.Run("captured range set rejects further mutation", func(t *testing.T) {
		rs := NewSignedRangeSet().AddRange(-1000, -101)
		e.AddMapping("VERY_NEG", rs)
		require.Panics(func() { rs.AddRange(0, 0) })
	})
}
