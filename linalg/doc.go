// SPDX-License-Identifier: MIT

// Package linalg implements the linear-algebra operation set of lvlsci:
// inversion, multiplication, concatenation, tiling, and the SVD, QR and
// Hessenberg decompositions.
//
// Every operation follows the same discipline:
//
//   - Fail fast: operand shapes are validated before the numeric backend is
//     invoked, so shape problems surface as package sentinels with both
//     shapes in the message, never as backend panics.
//   - Pure: operands are never mutated; every result is a freshly
//     allocated matrix owned by the caller.
//   - Honest numerics: backend-detected conditions (singularity,
//     non-convergence) surface as distinct numeric-failure sentinels; they
//     are never silently approximated.
//
// The heavy numerics are delegated to gonum's mat package; the Matrix
// model itself carries no compiled dependency on the backend, which keeps
// the conversion/model core usable when this operation module is disabled
// at the registration boundary (see package sci).
package linalg
