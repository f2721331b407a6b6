// ===================================================================================
// File:        automaton.go
// Package:     automaton
// Description: This file defines the compiled Automaton type and its Scan loop.
//
//	Scan walks the goto trie over a sequence of code points, following
//	failure links on mismatch, and reports every pattern occurrence by
//	draining each visited node's own output plus its dictionary-link
//	chain.
//
// Author:      Dana Stiles
// Created:     June 3, 2026
//
// ===================================================================================
package automaton

// Automaton is the compiled, immutable Aho-Corasick state machine. Nodes
// live in a single contiguous arena; every link between them is an index
// into that arena rather than a pointer, which keeps the failure-link
// cycles (root fails to itself) from becoming ownership cycles. An
// Automaton has no mutating methods after Build returns, so concurrent
// Scan calls over the same Automaton are safe.
type Automaton struct {
	nodes []node
}

// NodeCount reports how many states the automaton has, including root.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}

// Hit is one occurrence reported mid-scan: a pattern of the given length
// (in code points) ending just before the cursor reports it, labelled
// with its keyword.
type Hit struct {
	Length  int
	Keyword string
}

// Scan runs the automaton over a sequence of code points (already folded
// by the caller when matching case-insensitively) and invokes emit for
// every output reached: as each character is consumed, first the node's
// own output (if any), then the dictionary-link chain outward from it.
// emit is called with the 0-based index of the character just consumed
// (i.e. the match's to_char minus one) and the Hit describing a matched
// pattern.
//
// Scan never returns an error; an out-of-range link is an unreachable
// invariant break and panics with an *AutomatonInvariantError rather
// than silently desynchronizing the reported indices.
func (a *Automaton) Scan(text []rune, emit func(i int, h Hit)) {
	cur := root
	for i, r := range text {
		for cur != root {
			if _, ok := a.nodes[cur].children[r]; ok {
				break
			}
			cur = a.nodes[cur].fail
			a.checkBounds(cur)
		}
		if next, ok := a.nodes[cur].children[r]; ok {
			cur = next
		} else {
			cur = root
		}

		a.checkBounds(cur)
		for _, out := range a.nodes[cur].outputs {
			emit(i, Hit{Length: out.length, Keyword: out.keyword})
		}

		d := a.nodes[cur].dict
		for d != noLink {
			a.checkBounds(d)
			for _, out := range a.nodes[d].outputs {
				emit(i, Hit{Length: out.length, Keyword: out.keyword})
			}
			d = a.nodes[d].dict
		}
	}
}

func (a *Automaton) checkBounds(n id) {
	if n < 0 || int(n) >= len(a.nodes) {
		panic(&AutomatonInvariantError{Detail: "node id out of range during scan"})
	}
}
