/*
 * Copyright (c) 2024-present Tracekit authors
 */

package tracedef

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Errors(t *testing.T) {
	require := require.New(t)

	t.Run("enriched errors must keep their family", func(t *testing.T) {
		err := ErrAlreadyExists("structure member «%s»", "x")
		require.ErrorIs(err, ErrAlreadyExistsError)
		require.Contains(err.Error(), "structure member «x»")
	})

	t.Run("EnrichError without args must not format", func(t *testing.T) {
		err := EnrichError(ErrMissedError, "mapping label contains 100%%")
		// kept verbatim, not collapsed to a single percent sign
		require.Contains(err.Error(), "mapping label contains 100%%")
	})

	t.Run("contract violation panics carry the family", func(t *testing.T) {
		tc := New()
		s := tc.NewStructure()
		s.AppendMember("x", tc.NewUnsignedInteger())

		defer func() {
			r := recover()
			require.NotNil(r)
			err, ok := r.(error)
			require.True(ok)
			require.True(errors.Is(err, ErrAlreadyExistsError))
		}()
		s.AppendMember("x", tc.NewString())
	})
}
