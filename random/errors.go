// SPDX-License-Identifier: MIT
// Package random: sentinel error set (unified, consistent).

package random

import "errors"

// ErrDomain indicates an invalid draw specification: non-positive matrix
// dimensions, min >= max, or a non-finite range bound.
var ErrDomain = errors.New("random: parameter out of domain")
