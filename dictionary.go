// ===================================================================================
// File:        dictionary.go
// Package:     ahocorasick
// Description: This file defines Dictionary and the ToDictionary convenience
//
//	constructor for callers with a bare word list and no distinct keyword
//	per pattern.
//
// Author:      Dana Stiles
// Created:     June 5, 2026
//
// ===================================================================================
package ahocorasick

// Dictionary maps each pattern (needle) to the keyword a match against
// it should report. Keys must be non-empty and, under case-insensitive
// matching, unique after folding — see Builder.Build.
type Dictionary map[string]string

// ToDictionary deduplicates words and returns the identity mapping
// word -> word, mirroring the original_source ac_search.util.to_dictionary
// helper: it is how a bare pattern list becomes a Dictionary for callers
// who have no distinct keyword to attach to each pattern.
func ToDictionary(words []string) Dictionary {
	dict := make(Dictionary, len(words))
	for _, w := range words {
		dict[w] = w
	}
	return dict
}
