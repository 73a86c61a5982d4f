// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/matrix"
	"github.com/stretchr/testify/require"
)

// nested builds a sequence-of-sequences dynamic value from int rows.
func nested(rows ...[]int64) dynamic.Value {
	outer := make([]dynamic.Value, len(rows))
	for i, row := range rows {
		elems := make([]dynamic.Value, len(row))
		for j, v := range row {
			elems[j] = dynamic.Int(v)
		}
		outer[i] = dynamic.Array(elems...)
	}

	return dynamic.Array(outer...)
}

func TestFromDynamic_NestedRows(t *testing.T) {
	m, err := matrix.FromDynamic(nested([]int64{1, 2}, []int64{3, 4}))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	want, err := matrix.FromRows(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, want))
}

func TestFromDynamic_FlatSequenceIsRowVector(t *testing.T) {
	m, err := matrix.FromDynamic(dynamic.Array(
		dynamic.Int(1), dynamic.Float(2.5), dynamic.Int(3),
	))
	require.NoError(t, err)
	require.True(t, m.IsRowVector())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
}

func TestFromDynamic_MixedIntAndFloatElements(t *testing.T) {
	// Heterogeneous numeric kinds inside one matrix are fine; everything
	// lands as float64.
	m, err := matrix.FromDynamic(dynamic.Array(
		dynamic.Array(dynamic.Int(1), dynamic.Float(2.0)),
		dynamic.Array(dynamic.Float(3.5), dynamic.Int(4)),
	))
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.5, v)
}

func TestFromDynamic_JaggedRowsFail(t *testing.T) {
	// build_matrix([[1,2],[3]]) fails with a jagged-shape error.
	_, err := matrix.FromDynamic(nested([]int64{1, 2}, []int64{3}))
	require.ErrorIs(t, err, matrix.ErrJagged)
	// The error names the offending row and both lengths.
	require.Contains(t, err.Error(), "row 1")
	require.Contains(t, err.Error(), "1 elements")
	require.Contains(t, err.Error(), "want 2")
}

func TestFromDynamic_MixedScalarAndSequenceFail(t *testing.T) {
	_, err := matrix.FromDynamic(dynamic.Array(
		dynamic.Array(dynamic.Int(1), dynamic.Int(2)),
		dynamic.Int(3), // scalar amid sequences
	))
	require.ErrorIs(t, err, matrix.ErrJagged)

	_, err = matrix.FromDynamic(dynamic.Array(
		dynamic.Int(1),
		dynamic.Array(dynamic.Int(2)), // sequence amid scalars
	))
	require.ErrorIs(t, err, matrix.ErrJagged)
}

func TestFromDynamic_EmptyInputsFail(t *testing.T) {
	_, err := matrix.FromDynamic(dynamic.Array())
	require.ErrorIs(t, err, matrix.ErrEmptyInput)

	// An empty first row has no defined column count either.
	_, err = matrix.FromDynamic(dynamic.Array(dynamic.Array()))
	require.ErrorIs(t, err, matrix.ErrEmptyInput)
}

func TestFromDynamic_NonArrayInputFails(t *testing.T) {
	_, err := matrix.FromDynamic(dynamic.Float(1.0))
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromDynamic_ConversionFailureAbortsWithPosition(t *testing.T) {
	_, err := matrix.FromDynamic(dynamic.Array(
		dynamic.Array(dynamic.Int(1), dynamic.Int(2)),
		dynamic.Array(dynamic.Int(3), dynamic.String("oops")),
	))
	require.ErrorIs(t, err, dynamic.ErrConversion)
	require.Contains(t, err.Error(), "(1,1)")
}

func TestToDynamic_ScalarVectorMatrixShapes(t *testing.T) {
	// 1x1 collapses to a scalar float.
	one, err := matrix.FromRows(1, 1, []float64{7})
	require.NoError(t, err)
	require.Equal(t, dynamic.KindFloat, one.ToDynamic().Kind())

	// Vectors flatten, both orientations.
	col, err := matrix.ColumnVector([]float64{1, 2, 3})
	require.NoError(t, err)
	flat, ok := col.ToDynamic().AsArray()
	require.True(t, ok)
	require.Len(t, flat, 3)
	require.Equal(t, dynamic.KindFloat, flat[0].Kind())

	// 2-D data nests row by row.
	m, err := matrix.FromRows(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	rows, ok := m.ToDynamic().AsArray()
	require.True(t, ok)
	require.Len(t, rows, 2)
	row0, ok := rows[0].AsArray()
	require.True(t, ok)
	require.Len(t, row0, 2)
}

func TestFromDynamicToDynamic_RoundTrip(t *testing.T) {
	src := nested([]int64{1, 2, 3}, []int64{4, 5, 6})
	m, err := matrix.FromDynamic(src)
	require.NoError(t, err)
	back, err := matrix.FromDynamic(m.ToDynamic())
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, back))
}
