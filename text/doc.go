// Package text provides the pure text functions the compare pipeline is
// built on: plain-text extraction, whitespace normalization, and the
// tokenizers for each diff granularity.
//
// Everything here is deterministic and allocation-only; no function in
// this package can fail.
package text
