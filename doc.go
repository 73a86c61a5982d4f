// Package lvlsci is a strict, shape-checked numeric and matrix computation
// layer designed to be driven by loosely-typed dynamic values, the kind an
// embedding scripting environment produces.
//
// 🚀 What is lvlsci?
//
//	A library that bridges an untyped, heterogeneous value model with the
//	strict rank/shape/type invariants of linear algebra:
//		• dynamic/ - tagged dynamic values + explicit numeric conversions
//		• matrix/  - dense row-major Matrix model, vector orientation helpers,
//		             and the dynamic-input conversion & validation layer
//		• linalg/  - inversion, multiplication, concatenation, tiling,
//		             SVD, QR and Hessenberg decompositions (gonum backend)
//		• stats/   - argmin family + ordinary least-squares regression
//		• random/  - scalar and matrix random draws with injectable sources
//		• table/   - tabular ingestion (CSV file/URL) into dynamic values
//		• sci/     - the registration boundary: a feature-gated, loadable
//		             function surface for host runtimes
//
// ✨ Why choose lvlsci?
//
//   - Predictable failure - every violation returns a package sentinel
//     (errors.Is friendly) with shapes and indices in the message
//   - Fail fast - inputs are re-validated before the numeric backend runs,
//     so backend failures never surface as opaque panics
//   - Pure operations - no shared mutable state; every result is freshly
//     allocated and owned solely by its caller
//
// Typical flow:
//
//	dynamic value → matrix.FromDynamic → linalg/stats operation
//	             → Dense.ToDynamic / dynamic.FromNamed → host runtime
//
// See the examples/ directory for end-to-end scenarios.
package lvlsci
