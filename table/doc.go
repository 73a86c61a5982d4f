// SPDX-License-Identifier: MIT

// Package table ingests delimited numeric tables (CSV and friends) into
// dynamic values ready for matrix construction.
//
// Read accepts either a filesystem path or an http(s) URL, sniffs the
// delimiter from the data, skips leading non-numeric header rows, and
// requires every remaining cell to parse as a number. The result is a
// rectangular sequence-of-sequences dynamic value; feeding it to
// matrix.FromDynamic is the intended next step.
//
// All I/O is bounded: Read takes a context, and HTTP fetches additionally
// honor a configurable timeout. Every failure (transport, filesystem,
// parse) surfaces as ErrRead wrapping the unchanged cause.
package table
