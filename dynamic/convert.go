// SPDX-License-Identifier: MIT

// Package dynamic: explicit scalar conversions.
//
// Purpose:
//   - Provide the ONLY coercion rules between dynamic variants and typed
//     numeric primitives. Nothing elsewhere in the module converts a Value
//     by other means; all call sites funnel through these functions.
//
// Determinism & Policy:
//   - Conversions are pure and total over their accepted variants.
//   - No implicit widening beyond int→float (exact for |v| < 2^53 within
//     the interactive-scale inputs this library targets).
//   - Rejections return ErrConversion with the offending kind; tests match
//     via errors.Is.
package dynamic

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opToFloat = "ToFloat"
	opToInt   = "ToInt"
	opToBool  = "ToBool"
)

// convErrorf wraps ErrConversion (or another sentinel) with the operation
// tag and the offending kind, keeping a stable "Op(kind): underlying" shape.
func convErrorf(tag string, k Kind, err error) error {
	return fmt.Errorf("%s(%s): %w", tag, k, err)
}

// ToFloat converts a numeric Value into float64.
// Implementation:
//   - Stage 1: switch on the variant tag.
//   - Stage 2: KindFloat passes through; KindInt widens exactly.
//
// Inputs:
//   - v: any Value.
//
// Returns:
//   - float64: the numeric payload.
//
// Errors:
//   - ErrConversion for every non-numeric variant (bool included: the host
//     treats booleans as logic, not arithmetic).
//
// Complexity:
//   - Time O(1), Space O(1).
func ToFloat(v Value) (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.num, nil
	case KindInt:
		return float64(v.integer), nil
	default:
		return 0, convErrorf(opToFloat, v.kind, ErrConversion)
	}
}

// ToInt converts a numeric Value into int64.
// Implementation:
//   - Stage 1: switch on the variant tag.
//   - Stage 2: KindInt passes through; KindFloat is accepted only when the
//     payload is finite and integral (Trunc(v) == v), else ErrNotInteger.
//
// Inputs:
//   - v: any Value.
//
// Returns:
//   - int64: the exact integer payload.
//
// Errors:
//   - ErrNotInteger for fractional or non-finite floats.
//   - ErrConversion for every non-numeric variant.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Use ToInt for shape/count parameters (tile counts, dimensions) where
//     silent truncation would corrupt downstream shapes.
func ToInt(v Value) (int64, error) {
	switch v.kind {
	case KindInt:
		return v.integer, nil
	case KindFloat:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) || math.Trunc(v.num) != v.num {
			return 0, convErrorf(opToInt, v.kind, ErrNotInteger)
		}

		return int64(v.num), nil
	default:
		return 0, convErrorf(opToInt, v.kind, ErrConversion)
	}
}

// ToBool converts a boolean Value into bool.
// Numeric truthiness is intentionally NOT supported; the host decides what
// zero means, not this layer.
//
// Errors:
//   - ErrConversion for every non-boolean variant.
//
// Complexity: O(1).
func ToBool(v Value) (bool, error) {
	if v.kind != KindBool {
		return false, convErrorf(opToBool, v.kind, ErrConversion)
	}

	return v.boolean, nil
}
