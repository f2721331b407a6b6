// ===================================================================================
// File:        strip.go
// Package:     normalize
// Description: This file implements accent stripping via Unicode normalization:
//
//	NFD-decompose, drop combining marks, recompose to NFC.
//
// Author:      Dana Stiles
// Created:     June 1, 2026
//
// ===================================================================================
package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper is built once: NFD-decompose, drop every combining mark
// (category Mn), then recompose to NFC. This is the idiomatic Go route
// to accent-insensitive text — the standard library has no Unicode
// normalization forms at all, so golang.org/x/text/unicode/norm is the
// only ecosystem candidate.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents decomposes s, removes combining marks, and recomposes it.
// It is the transform behind the public NormalizeString helper; the
// Builder and Handle never call it on their own — only callers who want
// accent-insensitive matching apply it to both dictionary entries and
// haystacks before handing them to a Handle.
func StripAccents(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// transform.Chain of NFD/Remove/NFC never reports an error for
		// well-formed UTF-8 input; fall back to the untransformed string
		// rather than lose or desynchronize any text.
		return s
	}
	return out
}
