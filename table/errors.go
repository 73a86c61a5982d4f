// SPDX-License-Identifier: MIT
// Package table: sentinel error set (unified, consistent).

package table

import "errors"

// ErrRead is the single failure class of the ingestion surface: transport
// and filesystem problems, malformed rows, non-numeric cells. The wrapping
// message carries the unchanged cause; match with errors.Is.
var ErrRead = errors.New("table: read failed")
