// SPDX-License-Identifier: MIT

// Package sci is the registration boundary of lvlsci: the loadable unit a
// host scripting runtime plugs in to gain the numeric function surface.
//
// A Registry maps stable function names to uniform wrappers over the
// dynamic value type:
//
//	argmin, eye, ones, zeros                      (core, always on)
//	inv, mtimes, horzcat, vertcat, repmat,
//	svd, hessenberg, qr                           (linear algebra)
//	regress                                       (regression)
//	rand                                          (random)
//	read_matrix                                   (io)
//
// plus a set of physical constants (pi, c, e, g, h, phi, G).
//
// Capability groups mirror compile-time feature flags of similar science
// toolkits: each Without* option removes one group at construction time
// and never affects the others. Wrappers convert dynamic arguments with
// matrix.FromDynamic / dynamic.ToFloat, delegate to the typed packages,
// and convert results back, so every underlying sentinel (shape, domain,
// numeric failure) reaches the host unchanged.
package sci
