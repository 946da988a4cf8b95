/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestRangeSet(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to add and query ranges", func(t *testing.T) {
		rs := NewUnsignedRangeSet().AddRange(0, 9).AddRange(10, 20)

		require.Equal(2, rs.RangeCount())
		require.Equal(uint64(0), rs.Range(0).Lower())
		require.Equal(uint64(9), rs.Range(0).Upper())
		require.Equal(uint64(10), rs.Range(1).Lower())

		require.True(rs.Contains(0))
		require.True(rs.Contains(9))
		require.True(rs.Contains(15))
		require.True(rs.Contains(20))
		require.False(rs.Contains(21))

		require.False(rs.HasOverlaps())
		require.Equal("{[0, 9], [10, 20]}", rs.String())
	})

	t.Run("must keep add order without dedup or sort", func(t *testing.T) {
		rs := NewUnsignedRangeSet().AddRange(5, 5).AddRange(1, 2).AddRange(5, 5)
		require.Equal(3, rs.RangeCount())
		require.Equal(uint64(5), rs.Range(0).Lower())
		require.Equal(uint64(1), rs.Range(1).Lower())
		require.True(rs.HasOverlaps())
	})

	t.Run("must be ok to enumerate ranges", func(t *testing.T) {
		rs := NewSignedRangeSet().AddRange(-10, -1).AddRange(0, 10)
		cnt := 0
		rs.Ranges(func(r Range[int64]) {
			switch cnt {
			case 0:
				require.Equal(int64(-10), r.Lower())
			case 1:
				require.Equal(int64(0), r.Lower())
			}
			cnt++
		})
		require.Equal(2, cnt)
	})

	t.Run("signed set must compare as signed 64-bit", func(t *testing.T) {
		rs := NewSignedRangeSet().AddRange(-10, -1)
		require.True(rs.Contains(-5))
		require.False(rs.Contains(0))
		require.False(rs.Contains(math.MaxInt64))
	})

	t.Run("unsigned set must compare as unsigned 64-bit", func(t *testing.T) {
		rs := NewUnsignedRangeSet().AddRange(math.MaxUint64-1, math.MaxUint64)
		require.True(rs.Contains(math.MaxUint64))
		require.False(rs.Contains(0))
	})

	t.Run("empty set contains nothing and has no overlaps", func(t *testing.T) {
		rs := NewUnsignedRangeSet()
		require.False(rs.Contains(0))
		require.False(rs.HasOverlaps())
		require.Equal("{}", rs.String())
	})

	t.Run("must be panics", func(t *testing.T) {
		t.Run("if lower bound is greater than upper bound", func(t *testing.T) {
			require.Panics(func() { NewUnsignedRangeSet().AddRange(10, 9) })
			require.Panics(func() { NewSignedRangeSet().AddRange(0, -1) })
		})

		t.Run("if range index is out of bounds", func(t *testing.T) {
			rs := NewUnsignedRangeSet().AddRange(0, 1)
			require.Panics(func() { rs.Range(-1) })
			require.Panics(func() { rs.Range(1) })
		})

		t.Run("if add to frozen set", func(t *testing.T) {
			rs := NewUnsignedRangeSet().AddRange(0, 1)
			rs.freeze()
			require.True(rs.IsFrozen())
			require.Panics(func() { rs.AddRange(2, 3) })
		})
	})
}

func TestRangeSet_HasOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		ranges [][2]int64
		want   bool
	}{
		{"empty", nil, false},
		{"single", [][2]int64{{0, 10}}, false},
		{"disjoint", [][2]int64{{-10, -1}, {0, 10}, {11, 20}}, false},
		{"touching bounds", [][2]int64{{0, 5}, {5, 10}}, true},
		{"nested", [][2]int64{{0, 100}, {10, 20}}, true},
		{"crossing", [][2]int64{{0, 10}, {5, 15}}, true},
		{"late pair", [][2]int64{{0, 1}, {10, 20}, {15, 30}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewSignedRangeSet()
			for _, r := range tt.ranges {
				rs.AddRange(r[0], r[1])
			}
			if got := rs.HasOverlaps(); got != tt.want {
				t.Errorf("%v.HasOverlaps() = %v, want %v", rs, got, tt.want)
			}
		})
	}
}

func TestRangeSet_Fuzz(t *testing.T) {
	require := require.New(t)

	f := fuzz.New()
	rs := NewUnsignedRangeSet()
	var lo, hi uint64
	for i := 0; i < 100; i++ {
		f.Fuzz(&lo)
		f.Fuzz(&hi)
		if lo > hi {
			lo, hi = hi, lo
		}
		rs.AddRange(lo, hi)
		require.True(rs.Contains(lo))
		require.True(rs.Contains(hi))
	}
	require.Equal(100, rs.RangeCount())
}
