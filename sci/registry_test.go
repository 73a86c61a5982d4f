// SPDX-License-Identifier: MIT

package sci_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/linalg"
	"github.com/katalvlaran/lvlsci/matrix"
	"github.com/katalvlaran/lvlsci/sci"
	"github.com/katalvlaran/lvlsci/stats"
)

// floats wraps a slice as a dynamic array argument.
func floats(xs ...float64) dynamic.Value {
	return dynamic.FromFloats(xs)
}

// nested wraps rows as a dynamic sequence-of-sequences argument.
func nested(rows ...[]float64) dynamic.Value {
	return dynamic.FromRows(rows)
}

// callMatrix invokes a registry function and decodes the result matrix.
func callMatrix(t *testing.T, r *sci.Registry, name string, args ...dynamic.Value) *matrix.Dense {
	t.Helper()
	v, err := r.Call(name, args...)
	require.NoError(t, err)
	m, err := matrix.FromDynamic(v)
	require.NoError(t, err)

	return m
}

func TestRegistry_DefaultSurface(t *testing.T) {
	r := sci.NewRegistry()

	want := []string{
		"argmin", "eye", "hessenberg", "horzcat", "inv", "mtimes", "ones",
		"qr", "rand", "read_matrix", "regress", "repmat", "svd", "vertcat",
		"zeros",
	}
	require.Equal(t, want, r.Names())
}

func TestRegistry_UnknownName(t *testing.T) {
	r := sci.NewRegistry()

	_, err := r.Call("determinant")
	require.ErrorIs(t, err, sci.ErrUnknownFunc)
	_, ok := r.Lookup("determinant")
	require.False(t, ok)
}

func TestCall_ArgMin(t *testing.T) {
	r := sci.NewRegistry()

	v, err := r.Call("argmin", floats(43, 42, -500))
	require.NoError(t, err)
	idx, err := dynamic.ToInt(v)
	require.NoError(t, err)
	require.Equal(t, int64(2), idx)
}

func TestCall_ArgMin_EmptySequencePropagates(t *testing.T) {
	r := sci.NewRegistry()

	_, err := r.Call("argmin", dynamic.Array())
	require.ErrorIs(t, err, matrix.ErrEmptyInput)
}

func TestCall_HorzCat(t *testing.T) {
	r := sci.NewRegistry()

	m := callMatrix(t, r, "horzcat", floats(1, 2), floats(3, 4))
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, []float64{1, 2, 3, 4}, m.RawRowMajor())
}

func TestCall_InvAndMTimes(t *testing.T) {
	r := sci.NewRegistry()
	src := nested([]float64{4, 7}, []float64{2, 6})

	inv, err := r.Call("inv", src)
	require.NoError(t, err)

	prod := callMatrix(t, r, "mtimes", src, inv)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(prod, id, 1e-9))
}

func TestCall_SentinelsPassThrough(t *testing.T) {
	r := sci.NewRegistry()

	_, err := r.Call("inv", nested([]float64{1, 2}, []float64{2, 4}))
	require.ErrorIs(t, err, linalg.ErrSingular)

	_, err = r.Call("mtimes", nested([]float64{1, 2}), nested([]float64{1, 2}))
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)

	_, err = r.Call("regress", floats(1, 1, 1), floats(1, 2, 3))
	require.ErrorIs(t, err, stats.ErrRankDeficient)

	jagged := dynamic.Array(floats(1, 2), floats(3))
	_, err = r.Call("inv", jagged)
	require.ErrorIs(t, err, matrix.ErrJagged)
}

func TestCall_RepMat_BothForms(t *testing.T) {
	r := sci.NewRegistry()
	tile := floats(1, 2)

	square := callMatrix(t, r, "repmat", tile, dynamic.Int(2))
	require.Equal(t, 2, square.Rows())
	require.Equal(t, 4, square.Cols())

	rect := callMatrix(t, r, "repmat", tile, dynamic.Int(3), dynamic.Int(1))
	require.Equal(t, 3, rect.Rows())
	require.Equal(t, 2, rect.Cols())
}

func TestCall_SVDKeys(t *testing.T) {
	r := sci.NewRegistry()

	v, err := r.Call("svd", nested([]float64{3, 1}, []float64{1, 2}))
	require.NoError(t, err)
	require.Equal(t, dynamic.KindMap, v.Kind())
	for _, key := range []string{"u", "s", "v"} {
		_, ok := v.Lookup(key)
		require.True(t, ok, "missing key %q", key)
	}
}

func TestCall_Regress(t *testing.T) {
	r := sci.NewRegistry()

	v, err := r.Call("regress", floats(1, 2, 3), floats(2, 4, 6))
	require.NoError(t, err)

	slope, ok := v.Lookup("slope")
	require.True(t, ok)
	f, err := dynamic.ToFloat(slope)
	require.NoError(t, err)
	require.InDelta(t, 2.0, f, 1e-12)
}

func TestCall_RandScalarAndMatrix(t *testing.T) {
	r := sci.NewRegistry()

	v, err := r.Call("rand")
	require.NoError(t, err)
	f, err := dynamic.ToFloat(v)
	require.NoError(t, err)
	require.GreaterOrEqual(t, f, 0.0)
	require.Less(t, f, 1.0)

	m := callMatrix(t, r, "rand", dynamic.Int(2), dynamic.Int(3))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestCall_RandSeededReproducible(t *testing.T) {
	r := sci.NewRegistry(sci.WithRandomSeed(42))

	a, err := r.Call("rand")
	require.NoError(t, err)
	b, err := r.Call("rand")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestCall_Builders(t *testing.T) {
	r := sci.NewRegistry()

	eye := callMatrix(t, r, "eye", dynamic.Int(2), dynamic.Int(3))
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0}, eye.RawRowMajor())

	// Shape may also arrive as a two-element sequence.
	ones := callMatrix(t, r, "ones", dynamic.Array(dynamic.Int(2), dynamic.Int(2)))
	require.Equal(t, []float64{1, 1, 1, 1}, ones.RawRowMajor())

	zeros := callMatrix(t, r, "zeros", dynamic.Int(2))
	require.Equal(t, []float64{0, 0, 0, 0}, zeros.RawRowMajor())
}

func TestCall_ReadMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n3,4\n"), 0o600))

	r := sci.NewRegistry()
	m := callMatrix(t, r, "read_matrix", dynamic.String(path))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
}

func TestCall_ReadMatrix_NonStringArgument(t *testing.T) {
	r := sci.NewRegistry()

	_, err := r.Call("read_matrix", dynamic.Int(5))
	require.ErrorIs(t, err, dynamic.ErrConversion)
}

func TestCall_ArityChecked(t *testing.T) {
	r := sci.NewRegistry()

	_, err := r.Call("argmin")
	require.ErrorIs(t, err, sci.ErrArity)
	_, err = r.Call("inv", floats(1), floats(2))
	require.ErrorIs(t, err, sci.ErrArity)
	_, err = r.Call("repmat", floats(1))
	require.ErrorIs(t, err, sci.ErrArity)
	_, err = r.Call("rand", dynamic.Int(1), dynamic.Int(1), dynamic.Int(1))
	require.ErrorIs(t, err, sci.ErrArity)
}

func TestFeatureGroups_IndependentlyDisabled(t *testing.T) {
	cases := map[string]struct {
		opt     sci.Option
		removed []string
	}{
		"linear algebra": {
			opt: sci.WithoutLinearAlgebra(),
			removed: []string{
				"inv", "mtimes", "horzcat", "vertcat", "repmat", "svd",
				"hessenberg", "qr",
			},
		},
		"regression": {opt: sci.WithoutRegression(), removed: []string{"regress"}},
		"random":     {opt: sci.WithoutRandom(), removed: []string{"rand"}},
		"io":         {opt: sci.WithoutIO(), removed: []string{"read_matrix"}},
	}

	full := sci.NewRegistry().Names()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := sci.NewRegistry(tc.opt)

			for _, fn := range tc.removed {
				_, ok := r.Lookup(fn)
				require.False(t, ok, "%s should be removed", fn)
			}
			// Everything outside the group survives, argmin included.
			require.Len(t, r.Names(), len(full)-len(tc.removed))
			_, ok := r.Lookup("argmin")
			require.True(t, ok)
		})
	}
}

func TestConstants_DefaultAndDisabled(t *testing.T) {
	r := sci.NewRegistry()

	pi, ok := r.Constant("pi")
	require.True(t, ok)
	require.InDelta(t, 3.14159265358979, pi, 1e-14)
	gGrav, ok := r.Constant("G")
	require.True(t, ok)
	require.InDelta(t, 6.6743015e-11, gGrav, 1e-25)
	require.Len(t, r.Constants(), 7)

	bare := sci.NewRegistry(sci.WithoutConstants())
	require.Empty(t, bare.Constants())
	_, ok = bare.Constant("pi")
	require.False(t, ok)

	// Disabling constants leaves the function surface intact.
	require.Equal(t, r.Names(), bare.Names())
}
