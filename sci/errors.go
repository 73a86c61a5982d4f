// SPDX-License-Identifier: MIT
// Package sci: sentinel error set (unified, consistent).

package sci

import "errors"

var (
	// ErrUnknownFunc signals a lookup or call of a name that is not
	// registered, either because it never existed or because its
	// capability group was disabled.
	ErrUnknownFunc = errors.New("sci: unknown function")

	// ErrArity indicates a call with an unsupported argument count. The
	// wrapping message names the function, the count given and the counts
	// accepted.
	ErrArity = errors.New("sci: wrong argument count")
)
