// ===================================================================================
// File:        handle.go
// Package:     ahocorasick
// Description: This file defines Builder and Handle, the public compile-then-scan
//
//	entry points, plus the package-level one-shot SearchInText/SearchInTexts
//	helpers.
//
// Author:      Dana Stiles
// Created:     June 6, 2026
//
// ===================================================================================

// Package ahocorasick implements multi-pattern substring search over
// Unicode text using the Aho-Corasick automaton: given a dictionary
// mapping patterns to keywords, it locates every occurrence of any
// pattern in a haystack in a single linear pass, reporting each match's
// code-point span, matched text, and associated keyword.
package ahocorasick

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dstilesr/aho-corasick/internal/automaton"
	"github.com/dstilesr/aho-corasick/internal/normalize"
)

// Builder configures and compiles a Handle from a Dictionary. The zero
// value does not match NewBuilder's defaults: it matches
// case-insensitively, with no word-boundary filtering. Grounded in the fluent Builder the
// AMD-AGI-Primus-SaFE Lens ahocorasick package exposes for the same
// purpose (see DESIGN.md).
type Builder struct {
	caseSensitive bool
	checkBounds   bool
}

// NewBuilder returns a Builder defaulting to case-sensitive matching
// with word-boundary filtering disabled.
func NewBuilder() *Builder {
	return &Builder{caseSensitive: true}
}

// CaseSensitive overrides case sensitivity. v=false folds both the
// dictionary and every haystack before matching.
func (b *Builder) CaseSensitive(v bool) *Builder {
	b.caseSensitive = v
	return b
}

// CheckBounds enables or disables the word-boundary filter: a match is
// kept only if the code points immediately surrounding it are non-word
// characters (or the match touches a text edge).
func (b *Builder) CheckBounds(v bool) *Builder {
	b.checkBounds = v
	return b
}

// Build validates dict and compiles it into a Handle. A rejected
// dictionary yields an *InvalidDictionaryError and no Handle.
func (b *Builder) Build(dict Dictionary) (*Handle, error) {
	a, err := automaton.Build(map[string]string(dict), b.caseSensitive)
	if err != nil {
		return nil, err
	}
	return &Handle{
		automaton:     a,
		caseSensitive: b.caseSensitive,
		checkBounds:   b.checkBounds,
	}, nil
}

// Handle is a compiled dictionary: an Automaton plus the case-sensitivity
// and word-boundary flags it was built with. A Handle is read-only after
// construction, so the same Handle can run Search/SearchMany concurrently
// from many goroutines.
type Handle struct {
	automaton     *automaton.Automaton
	caseSensitive bool
	checkBounds   bool
}

// Search scans haystack once and returns every match, in non-decreasing
// order of ToChar.
func (h *Handle) Search(haystack string) []Match {
	return h.scan(haystack)
}

// SearchMany scans each haystack independently, preserving input order:
// result[i] corresponds to haystacks[i]. Each haystack is scanned in its
// own goroutine, which writes into its own pre-sized slot, so no result
// ever races with another.
func (h *Handle) SearchMany(haystacks []string) [][]Match {
	results := make([][]Match, len(haystacks))

	g, _ := errgroup.WithContext(context.Background())
	for i, haystack := range haystacks {
		i, haystack := i, haystack
		g.Go(func() error {
			results[i] = h.scan(haystack)
			return nil
		})
	}
	_ = g.Wait() // h.scan never errors; Wait only joins the workers

	return results
}

// scan folds the haystack when matching case-insensitively, walks the
// automaton, and emits one Match per output reached from each visited
// node's dictionary-link chain.
func (h *Handle) scan(haystack string) []Match {
	original := []rune(haystack)
	scanText := original
	if !h.caseSensitive {
		scanText = normalize.FoldRunes(original)
	}

	var matches []Match
	h.automaton.Scan(scanText, func(i int, hit automaton.Hit) {
		to := i + 1
		from := to - hit.Length

		if h.checkBounds && !boundsOK(scanText, from, to) {
			return
		}

		matches = append(matches, Match{
			FromChar: from,
			ToChar:   to,
			Value:    string(original[from:to]),
			Kw:       hit.Keyword,
		})
	})
	return matches
}

// boundsOK reports whether the code points surrounding [from, to) in text
// are non-word characters, or the match touches a text edge — the
// word-boundary filter.
func boundsOK(text []rune, from, to int) bool {
	if from > 0 && normalize.IsWordRune(text[from-1]) {
		return false
	}
	if to < len(text) && normalize.IsWordRune(text[to]) {
		return false
	}
	return true
}

// SearchInText builds an ephemeral Handle (word-boundary filtering off)
// and runs Search once. patterns accepts a Dictionary, a plain
// map[string]string, or a bare []string, mirroring the ergonomics of the original_source ah_search
// wrapper, whose search_in_text takes a plain word list and builds the
// identity dictionary internally via ToDictionary.
func SearchInText(patterns any, haystack string, caseSensitive bool) ([]Match, error) {
	dict, err := toDictionaryArg(patterns)
	if err != nil {
		return nil, err
	}
	h, err := NewBuilder().CaseSensitive(caseSensitive).Build(dict)
	if err != nil {
		return nil, err
	}
	matches := h.Search(haystack)
	populateKeywords(matches)
	return matches, nil
}

// SearchInTexts builds an ephemeral Handle and runs SearchMany once.
// patterns accepts the same types as SearchInText.
func SearchInTexts(patterns any, haystacks []string, caseSensitive bool) ([][]Match, error) {
	dict, err := toDictionaryArg(patterns)
	if err != nil {
		return nil, err
	}
	h, err := NewBuilder().CaseSensitive(caseSensitive).Build(dict)
	if err != nil {
		return nil, err
	}
	results := h.SearchMany(haystacks)
	for _, matches := range results {
		populateKeywords(matches)
	}
	return results, nil
}

// toDictionaryArg resolves the one-shot entry points' dual-typed patterns
// argument into a Dictionary: a Dictionary or a map[string]string is used
// as-is, a []string is deduplicated and self-mapped via ToDictionary, and
// anything else is rejected before any automaton work begins.
func toDictionaryArg(patterns any) (Dictionary, error) {
	switch v := patterns.(type) {
	case Dictionary:
		return v, nil
	case map[string]string:
		return Dictionary(v), nil
	case []string:
		return ToDictionary(v), nil
	default:
		return nil, &InvalidDictionaryError{
			Reason: "patterns must be a Dictionary, a map[string]string, or a []string",
		}
	}
}

// populateKeywords fills Kw with Value for the rare entry registered with
// an empty keyword label. Every Dictionary — including the self-mapped
// one ToDictionary builds — carries an explicit keyword per pattern, so
// in practice this only guards against a caller registering a pattern
// with no distinct label of its own.
func populateKeywords(matches []Match) {
	for i := range matches {
		if matches[i].Kw == "" {
			matches[i].Kw = matches[i].Value
		}
	}
}
