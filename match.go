// ===================================================================================
// File:        match.go
// Package:     ahocorasick
// Description: This file defines Match, the public record of one pattern occurrence.
//
// Author:      Dana Stiles
// Created:     June 5, 2026
//
// ===================================================================================
package ahocorasick

// Match is one occurrence of a dictionary pattern in a haystack.
//
// FromChar and ToChar are measured in code points (not bytes, not UTF-16
// units), so that haystack converted to []rune and sliced
// [FromChar:ToChar] always yields exactly Value.
type Match struct {
	FromChar int
	ToChar   int
	Value    string
	Kw       string
}
