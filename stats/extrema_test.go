// SPDX-License-Identifier: MIT

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsci/stats"
)

func TestArgMin_FindsSmallest(t *testing.T) {
	idx, err := stats.ArgMin([]float64{43, 42, -500})
	require.NoError(t, err)
	require.Equal(t, 2, idx)
}

func TestArgMin_FirstOccurrenceWinsTies(t *testing.T) {
	idx, err := stats.ArgMin([]float64{3, 1, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestArgMax_FindsLargest(t *testing.T) {
	idx, err := stats.ArgMax([]float64{-2, 7, 7, 0})
	require.NoError(t, err)
	require.Equal(t, 1, idx) // first of the tied maxima
}

func TestMinMax_Values(t *testing.T) {
	lo, err := stats.Min([]float64{4, -1, 9})
	require.NoError(t, err)
	require.Equal(t, -1.0, lo)

	hi, err := stats.Max([]float64{4, -1, 9})
	require.NoError(t, err)
	require.Equal(t, 9.0, hi)
}

func TestExtrema_SingleElement(t *testing.T) {
	idx, err := stats.ArgMin([]float64{5})
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestExtrema_EmptyInputRejected(t *testing.T) {
	_, err := stats.ArgMin(nil)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.ArgMax([]float64{})
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Min(nil)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Max(nil)
	require.ErrorIs(t, err, stats.ErrEmptyInput)
}
