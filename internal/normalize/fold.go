// ===================================================================================
// File:        fold.go
// Package:     normalize
// Description: This file implements 1:1 code-point case folding and the
//
//	word-character classification the word-boundary filter relies on.
//
// Author:      Dana Stiles
// Created:     June 1, 2026
//
// ===================================================================================

// Package normalize implements the two separable Unicode operations the
// core depends on: case folding (used by both dictionary and haystack
// when matching case-insensitively) and accent stripping (the standalone
// NormalizeString helper, never invoked by the Builder or Handle
// themselves).
package normalize

import "unicode"

// FoldRunes returns a code-point-for-code-point simple lowercase mapping
// of text. It deliberately does not use golang.org/x/text/cases' full
// Unicode case folding: full folding can expand a single code point into
// several (ß → ss, İ → i̇), which would desynchronize from_char/to_char
// from the original text. unicode.ToLower is always 1:1 on the BMP
// simple-case-fold subset, which keeps that index invariant intact.
func FoldRunes(text []rune) []rune {
	folded := make([]rune, len(text))
	for i, r := range text {
		folded[i] = unicode.ToLower(r)
	}
	return folded
}

// FoldString is FoldRunes for callers that only have a string handy
// (dictionary keys during validation).
func FoldString(s string) string {
	return string(FoldRunes([]rune(s)))
}

// IsWordRune reports whether r counts as a word character for the
// word-boundary filter: any Unicode letter, digit, or underscore.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
