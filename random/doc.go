// SPDX-License-Identifier: MIT

// Package random generates uniform random scalars and matrices for the
// lvlsci surface.
//
// Generation is configured through functional options: shape, half-open
// value range [min, max), an explicit seed, or a caller supplied source.
// The default draw is a single scalar in [0, 1).
//
// Policy:
//
//   - Unseeded by default. Two unseeded processes produce different
//     streams; reproducibility is an explicit opt-in via WithSeed or
//     WithSource.
//   - Validation is fail-fast: non-positive dimensions, an empty or
//     inverted range, and non-finite bounds are ErrDomain before any draw
//     happens.
//   - Each call draws from its own source when seeded, so a fixed seed
//     yields an identical stream on every call.
package random
