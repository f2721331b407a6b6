// ===================================================================================
// File:        node.go
// Package:     automaton
// Description: This file defines the arena-addressed node type backing the
//
//	Aho-Corasick automaton built by this package.
//
//	Every node is stored by value in a single contiguous slice and
//	addressed by an integer id rather than a pointer, so that the
//	failure-link graph (which is cyclic — the root fails to itself) never
//	becomes an ownership cycle.
//
// Author:      Dana Stiles
// Created:     June 2, 2026
//
// ===================================================================================

// Package automaton builds and scans the Aho-Corasick finite state
// machine: a goto trie over code points, augmented with failure links
// and dictionary-output links.
package automaton

// id identifies a node by its position in the arena. The zero value is
// always the root — it has no parent and its own failure link.
type id int32

const root id = 0

// output records one pattern that terminates at a node.
type output struct {
	length  int    // pattern length, in code points
	keyword string // Keyword associated with the pattern
}

// node is one state of the automaton. Links are ids into the owning
// Automaton's arena, never pointers — this keeps the failure-link
// cycles (root fails to itself, and many failures point backward)
// representable without owning cycles.
const noLink id = -1

type node struct {
	children map[rune]id
	fail     id
	dict     id // dictionary link; noLink means "no ancestor with output"
	outputs  []output
}

func newNode() node {
	return node{
		children: make(map[rune]id),
		dict:     noLink,
	}
}
