// ===================================================================================
// File:        builder.go
// Package:     automaton
// Description: This file validates a raw pattern dictionary and compiles it into
//
//	an Automaton: trie insertion followed by the breadth-first pass that
//	computes every node's failure link and dictionary-output link.
//
//	Features implemented in this file:
//	- Dictionary validation (empty dictionary, empty pattern, folding collisions)
//	- Trie insertion over code points
//	- Breadth-first failure-link and dictionary-link construction
//
// Author:      Dana Stiles
// Created:     June 3, 2026
//
// ===================================================================================
package automaton

import (
	"fmt"

	"github.com/dstilesr/aho-corasick/internal/normalize"
)

// InvalidDictionaryError reports why a dictionary was rejected before any
// structural work began. It is always fatal for the current Build call:
// no partial automaton is ever returned.
type InvalidDictionaryError struct {
	Reason string
}

func (e *InvalidDictionaryError) Error() string {
	return fmt.Sprintf("invalid dictionary: %s", e.Reason)
}

// AutomatonInvariantError marks a break in the failure-link construction
// that should be unreachable from a correctly implemented Builder. It is
// a panic-class condition — an out-of-range node id reached mid-scan —
// never returned.
type AutomatonInvariantError struct {
	Detail string
}

func (e *AutomatonInvariantError) Error() string {
	return fmt.Sprintf("automaton invariant broken: %s", e.Detail)
}

// Entry is one (pattern, keyword) pair of a validated dictionary, in the
// code-point sequence the trie is keyed on (already folded if the
// automaton is being built case-insensitively).
type Entry struct {
	Pattern []rune
	Keyword string
}

// Build validates the given (pattern, keyword) pairs and constructs an
// immutable Automaton: a goto trie, failure links, and dictionary-output
// chains. When caseSensitive is false, Build folds every key itself (see
// package normalize) and rejects keys that collide after folding; the
// haystack is still folded by the caller before Scan.
func Build(dict map[string]string, caseSensitive bool) (*Automaton, error) {
	if len(dict) == 0 {
		return nil, &InvalidDictionaryError{Reason: "dictionary is empty"}
	}

	entries, err := validate(dict, caseSensitive)
	if err != nil {
		return nil, err
	}

	a := &Automaton{nodes: []node{newNode()}}
	for _, e := range entries {
		a.insert(e.Pattern, e.Keyword)
	}
	a.linkFailures()
	return a, nil
}

// validate folds (when case-insensitive) and checks dictionary keys,
// returning the effective entries in map iteration order, which is not
// fixed from one call to the next.
func validate(dict map[string]string, caseSensitive bool) ([]Entry, error) {
	entries := make([]Entry, 0, len(dict))
	seen := make(map[string]string, len(dict)) // folded key -> original key, for collision messages

	for pattern, keyword := range dict {
		if pattern == "" {
			return nil, &InvalidDictionaryError{Reason: "dictionary contains an empty pattern"}
		}

		key := pattern
		if !caseSensitive {
			key = normalize.FoldString(pattern)
		}

		if original, dup := seen[key]; dup {
			if caseSensitive {
				return nil, &InvalidDictionaryError{
					Reason: fmt.Sprintf("duplicate key %q", pattern),
				}
			}
			return nil, &InvalidDictionaryError{
				Reason: fmt.Sprintf("patterns %q and %q collide after case folding", original, pattern),
			}
		}
		seen[key] = pattern

		runes := []rune(key)
		entries = append(entries, Entry{Pattern: runes, Keyword: keyword})
	}

	return entries, nil
}

// insert walks (and extends) the goto tree for one pattern, appending its
// keyword at the terminal node. A node carries at most one direct output
// per distinct pattern; two different patterns can only collide at a
// node if they are the same string, which validate already rejects.
func (a *Automaton) insert(pattern []rune, keyword string) {
	cur := root
	for _, r := range pattern {
		next, ok := a.nodes[cur].children[r]
		if !ok {
			a.nodes = append(a.nodes, newNode())
			next = id(len(a.nodes) - 1)
			a.nodes[cur].children[r] = next
		}
		cur = next
	}
	a.nodes[cur].outputs = append(a.nodes[cur].outputs, output{
		length:  len(pattern),
		keyword: keyword,
	})
}

// linkFailures runs the breadth-first pass that computes every node's
// failure link and dictionary link.
func (a *Automaton) linkFailures() {
	queue := make([]id, 0, len(a.nodes))

	for _, child := range a.nodes[root].children {
		a.nodes[child].fail = root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for r, child := range a.nodes[cur].children {
			queue = append(queue, child)

			f := a.nodes[cur].fail
			for f != root {
				if _, ok := a.nodes[f].children[r]; ok {
					break
				}
				f = a.nodes[f].fail
			}
			if next, ok := a.nodes[f].children[r]; ok && next != child {
				f = next
			} else {
				f = root
			}
			a.nodes[child].fail = f

			if len(a.nodes[f].outputs) > 0 {
				a.nodes[child].dict = f
			} else {
				a.nodes[child].dict = a.nodes[f].dict
			}
		}
	}
}
