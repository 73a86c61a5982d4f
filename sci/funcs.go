// SPDX-License-Identifier: MIT

// Package sci: the wrapper layer. Each registered function converts its
// dynamic arguments, delegates to the typed package, and converts the
// result back. Typed sentinels pass through unchanged so the host can
// classify failures with errors.Is.

package sci

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlsci/dynamic"
	"github.com/katalvlaran/lvlsci/linalg"
	"github.com/katalvlaran/lvlsci/matrix"
	"github.com/katalvlaran/lvlsci/random"
	"github.com/katalvlaran/lvlsci/stats"
	"github.com/katalvlaran/lvlsci/table"
)

// arityErrorf reports an unsupported argument count for a named function.
func arityErrorf(name string, got int, want string) error {
	return fmt.Errorf("%s: %d arguments, want %s: %w", name, got, want, ErrArity)
}

// matrixArg builds the matrix operand at position pos (1-based in message).
func matrixArg(name string, pos int, v dynamic.Value) (*matrix.Dense, error) {
	m, err := matrix.FromDynamic(v)
	if err != nil {
		return nil, fmt.Errorf("%s: argument %d: %w", name, pos, err)
	}

	return m, nil
}

// floatsArg extracts a flat numeric sequence (or a vector-shaped matrix)
// as a plain slice.
func floatsArg(name string, pos int, v dynamic.Value) ([]float64, error) {
	m, err := matrix.FromDynamic(v)
	if err != nil {
		return nil, fmt.Errorf("%s: argument %d: %w", name, pos, err)
	}
	if !m.IsVector() {
		return nil, fmt.Errorf("%s: argument %d: %dx%d: %w", name, pos, m.Rows(), m.Cols(), matrix.ErrNotVector)
	}

	return m.RawRowMajor(), nil
}

// intArg extracts an integer scalar argument.
func intArg(name string, pos int, v dynamic.Value) (int64, error) {
	n, err := dynamic.ToInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: argument %d: %w", name, pos, err)
	}

	return n, nil
}

// stringArg extracts a string scalar argument.
func stringArg(name string, pos int, v dynamic.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", fmt.Errorf("%s: argument %d (%s): %w", name, pos, v.Kind(), dynamic.ErrConversion)
	}

	return s, nil
}

// dimsArgs resolves the shared builder calling conventions:
// (n) -> n×n, ([r, c]) -> r×c, (r, c) -> r×c.
func dimsArgs(name string, args []dynamic.Value) (int, int, error) {
	switch len(args) {
	case 1:
		if elems, ok := args[0].AsArray(); ok {
			if len(elems) != 2 {
				return 0, 0, fmt.Errorf("%s: shape sequence has %d elements, want 2: %w", name, len(elems), ErrArity)
			}
			r, err := intArg(name, 1, elems[0])
			if err != nil {
				return 0, 0, err
			}
			c, err := intArg(name, 1, elems[1])
			if err != nil {
				return 0, 0, err
			}

			return int(r), int(c), nil
		}
		n, err := intArg(name, 1, args[0])
		if err != nil {
			return 0, 0, err
		}

		return int(n), int(n), nil
	case 2:
		r, err := intArg(name, 1, args[0])
		if err != nil {
			return 0, 0, err
		}
		c, err := intArg(name, 2, args[1])
		if err != nil {
			return 0, 0, err
		}

		return int(r), int(c), nil
	default:
		return 0, 0, arityErrorf(name, len(args), "1 or 2")
	}
}

// registerCore binds the always-on group: argmin and the matrix builders.
func (r *Registry) registerCore() {
	r.register("argmin", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf("argmin", len(args), "1")
		}
		xs, err := floatsArg("argmin", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		idx, err := stats.ArgMin(xs)
		if err != nil {
			return dynamic.Value{}, err
		}

		return dynamic.Int(int64(idx)), nil
	})

	r.register("eye", builderFunc("eye", eyeDense))
	r.register("ones", builderFunc("ones", matrix.NewOnes))
	r.register("zeros", builderFunc("zeros", matrix.NewZeros))
}

// builderFunc adapts a shape-driven constructor to the wrapper signature.
func builderFunc(name string, build func(rows, cols int) (*matrix.Dense, error)) Func {
	return func(args ...dynamic.Value) (dynamic.Value, error) {
		rows, cols, err := dimsArgs(name, args)
		if err != nil {
			return dynamic.Value{}, err
		}
		m, err := build(rows, cols)
		if err != nil {
			return dynamic.Value{}, fmt.Errorf("%s: %w", name, err)
		}

		return m.ToDynamic(), nil
	}
}

// eyeDense builds a rectangular identity: ones on the main diagonal.
func eyeDense(rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ {
		if err := m.Set(i, i, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// unaryMatrixFunc adapts a one-operand matrix kernel.
func unaryMatrixFunc(name string, op func(*matrix.Dense) (*matrix.Dense, error)) Func {
	return func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf(name, len(args), "1")
		}
		m, err := matrixArg(name, 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		out, err := op(m)
		if err != nil {
			return dynamic.Value{}, err
		}

		return out.ToDynamic(), nil
	}
}

// binaryMatrixFunc adapts a two-operand matrix kernel.
func binaryMatrixFunc(name string, op func(a, b *matrix.Dense) (*matrix.Dense, error)) Func {
	return func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 2 {
			return dynamic.Value{}, arityErrorf(name, len(args), "2")
		}
		a, err := matrixArg(name, 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		b, err := matrixArg(name, 2, args[1])
		if err != nil {
			return dynamic.Value{}, err
		}
		out, err := op(a, b)
		if err != nil {
			return dynamic.Value{}, err
		}

		return out.ToDynamic(), nil
	}
}

// registerLinearAlgebra binds the linear-algebra group.
func (r *Registry) registerLinearAlgebra() {
	r.register("inv", unaryMatrixFunc("inv", linalg.Inv))
	r.register("mtimes", binaryMatrixFunc("mtimes", linalg.MTimes))
	r.register("horzcat", binaryMatrixFunc("horzcat", linalg.HorzCat))
	r.register("vertcat", binaryMatrixFunc("vertcat", linalg.VertCat))

	r.register("repmat", func(args ...dynamic.Value) (dynamic.Value, error) {
		// repmat(m, n) tiles n×n; repmat(m, nx, ny) tiles nx×ny.
		if len(args) != 2 && len(args) != 3 {
			return dynamic.Value{}, arityErrorf("repmat", len(args), "2 or 3")
		}
		m, err := matrixArg("repmat", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		nx, err := intArg("repmat", 2, args[1])
		if err != nil {
			return dynamic.Value{}, err
		}
		ny := nx
		if len(args) == 3 {
			if ny, err = intArg("repmat", 3, args[2]); err != nil {
				return dynamic.Value{}, err
			}
		}
		out, err := linalg.RepMat(m, int(nx), int(ny))
		if err != nil {
			return dynamic.Value{}, err
		}

		return out.ToDynamic(), nil
	})

	r.register("svd", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf("svd", len(args), "1")
		}
		m, err := matrixArg("svd", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		res, err := linalg.SVD(m)
		if err != nil {
			return dynamic.Value{}, err
		}

		return res.ToDynamic(), nil
	})

	r.register("hessenberg", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf("hessenberg", len(args), "1")
		}
		m, err := matrixArg("hessenberg", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		res, err := linalg.Hessenberg(m)
		if err != nil {
			return dynamic.Value{}, err
		}

		return res.ToDynamic(), nil
	})

	r.register("qr", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf("qr", len(args), "1")
		}
		m, err := matrixArg("qr", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		res, err := linalg.QR(m)
		if err != nil {
			return dynamic.Value{}, err
		}

		return res.ToDynamic(), nil
	})
}

// registerRegression binds the regression group.
func (r *Registry) registerRegression() {
	r.register("regress", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 2 {
			return dynamic.Value{}, arityErrorf("regress", len(args), "2")
		}
		x, err := floatsArg("regress", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}
		y, err := floatsArg("regress", 2, args[1])
		if err != nil {
			return dynamic.Value{}, err
		}
		fit, err := stats.Regress(x, y)
		if err != nil {
			return dynamic.Value{}, err
		}

		return fit.ToDynamic(), nil
	})
}

// registerRandom binds the random group; the seed policy is fixed at
// registry construction.
func (r *Registry) registerRandom(o options) {
	r.register("rand", func(args ...dynamic.Value) (dynamic.Value, error) {
		var drawOpts []random.Option
		if o.seeded {
			drawOpts = append(drawOpts, random.WithSeed(o.seed))
		}

		if len(args) == 0 {
			v, err := random.Scalar(drawOpts...)
			if err != nil {
				return dynamic.Value{}, err
			}

			return dynamic.Float(v), nil
		}

		rows, cols, err := dimsArgs("rand", args)
		if err != nil {
			return dynamic.Value{}, err
		}
		m, err := random.Matrix(append(drawOpts, random.WithShape(rows, cols))...)
		if err != nil {
			return dynamic.Value{}, err
		}

		return m.ToDynamic(), nil
	})
}

// registerIO binds the io group; the timeout policy is fixed at registry
// construction.
func (r *Registry) registerIO(o options) {
	r.register("read_matrix", func(args ...dynamic.Value) (dynamic.Value, error) {
		if len(args) != 1 {
			return dynamic.Value{}, arityErrorf("read_matrix", len(args), "1")
		}
		source, err := stringArg("read_matrix", 1, args[0])
		if err != nil {
			return dynamic.Value{}, err
		}

		var readOpts []table.Option
		if o.readTimeout > 0 {
			readOpts = append(readOpts, table.WithTimeout(o.readTimeout))
		}

		return table.Read(context.Background(), source, readOpts...)
	})
}
