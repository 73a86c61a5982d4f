// SPDX-License-Identifier: MIT

// Package dynamic models the loosely-typed values exchanged with an
// embedding scripting environment and the explicit conversions between
// those values and typed numeric primitives.
//
// The dynamic package provides:
//
//   - Value, a tagged variant over the host-relevant shapes: integer,
//     floating-point, boolean, string, ordered sequence, and ordered
//     string-keyed mapping.
//   - Exhaustive per-target conversions (ToFloat, ToInt, ToBool) that never
//     coerce implicitly: a variant that cannot represent the target type is
//     a ConversionError, not a best-effort guess.
//   - Adapters that render typed results back into dynamic form
//     (FromFloats, FromRows, FromNamed).
//
// Values are immutable once constructed; conversions are pure and safe for
// concurrent use. Ownership never crosses the boundary: a Value borrowed
// during conversion is not retained.
package dynamic
