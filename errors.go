// ===================================================================================
// File:        errors.go
// Package:     ahocorasick
// Description: This file re-exports the internal/automaton error types under the
//
//	public package so callers never need to import the internal package
//	path to type-assert on a failure.
//
// Author:      Dana Stiles
// Created:     June 5, 2026
//
// ===================================================================================
package ahocorasick

import "github.com/dstilesr/aho-corasick/internal/automaton"

// InvalidDictionaryError is returned when a dictionary fails validation:
// it is empty, contains an empty pattern, contains a duplicate key, or
// contains a case-insensitive folding collision. It is always raised
// before any automaton is built; no partial Handle is ever exposed.
type InvalidDictionaryError = automaton.InvalidDictionaryError

// AutomatonInvariantError marks a node id that fell outside the arena
// during a scan. It is never returned; a correctly built Handle can
// only panic with this type if the automaton itself was constructed
// incorrectly.
type AutomatonInvariantError = automaton.AutomatonInvariantError
