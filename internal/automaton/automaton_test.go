// ===================================================================================
// File:        automaton_test.go
// Package:     automaton
// Description: This file contains unit tests for the Scan loop.
//
// Author:      Dana Stiles
// Created:     June 4, 2026
//
// Test Coverage:
//
//	✅ TestScanFindsOverlappingSuffixPatterns — Overlapping suffix matches in one pass
//	✅ TestScanCaseInsensitive                — Folded scan against a lowercase-keyed trie
//	✅ TestScanEmptyHaystackYieldsNoMatches   — Empty haystack yields no matches
//	✅ TestScanWholeHaystackPattern           — Haystack equal to a single pattern
//	✅ TestScanSuffixChainOrderIsLongestFirst — Dictionary-link chain emits longest match first
//	✅ TestDeterministicRepeatedScans         — Repeated scans of the same automaton agree
//
// ===================================================================================
package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstilesr/aho-corasick/internal/normalize"
)

type recorded struct {
	end     int // index just consumed, i.e. to_char - 1
	keyword string
	length  int
}

func scanAll(t *testing.T, dict map[string]string, caseSensitive bool, haystack string) []recorded {
	t.Helper()
	a, err := Build(dict, caseSensitive)
	require.NoError(t, err)

	text := []rune(haystack)
	if !caseSensitive {
		text = normalize.FoldRunes(text)
	}

	var got []recorded
	a.Scan(text, func(i int, h Hit) {
		got = append(got, recorded{end: i, keyword: h.Keyword, length: h.Length})
	})
	return got
}

func TestScanFindsOverlappingSuffixPatterns(t *testing.T) {
	dict := map[string]string{"ab": "ab", "abc": "abc", "cd": "cd", "bcd": "bcd", "dq": "dq"}
	got := scanAll(t, dict, true, "abq cdr qpbcd 12abcd")
	assert.Len(t, got, 8)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].end, got[i].end, "matches must be non-decreasing in to_char")
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	dict := map[string]string{"abc": "abc", "cde": "cde", "erx": "erx"}
	got := scanAll(t, dict, false, "ABCDE eRX cDe")
	assert.Len(t, got, 4)
}

func TestScanEmptyHaystackYieldsNoMatches(t *testing.T) {
	got := scanAll(t, map[string]string{"a": "a"}, true, "")
	assert.Empty(t, got)
}

func TestScanWholeHaystackPattern(t *testing.T) {
	got := scanAll(t, map[string]string{"hello": "greeting"}, true, "hello")
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].end+1)
	assert.Equal(t, 5, got[0].length)
}

func TestScanSuffixChainOrderIsLongestFirst(t *testing.T) {
	// "bca", "ca" and "a" all end at index 2 of the haystack "bca".
	dict := map[string]string{"a": "a", "ca": "ca", "bca": "bca"}
	var order []string
	a, err := Build(dict, true)
	require.NoError(t, err)
	a.Scan([]rune("bca"), func(i int, h Hit) {
		if i == 2 {
			order = append(order, h.Keyword)
		}
	})
	require.Equal(t, []string{"bca", "ca", "a"}, order)
}

func TestDeterministicRepeatedScans(t *testing.T) {
	dict := map[string]string{"ab": "ab", "abc": "abc", "cd": "cd", "bcd": "bcd", "dq": "dq"}
	a, err := Build(dict, true)
	require.NoError(t, err)

	run := func() []recorded {
		var got []recorded
		a.Scan([]rune("abq cdr qpbcd 12abcd"), func(i int, h Hit) {
			got = append(got, recorded{end: i, keyword: h.Keyword, length: h.Length})
		})
		return got
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}
