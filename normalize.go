// ===================================================================================
// File:        normalize.go
// Package:     ahocorasick
// Description: This file exposes the public NormalizeString accent-stripping helper.
//
// Author:      Dana Stiles
// Created:     June 5, 2026
//
// ===================================================================================
package ahocorasick

import "github.com/dstilesr/aho-corasick/internal/normalize"

// NormalizeString strips accents from s: NFD-decompose, drop combining
// marks, recompose. The Builder and Handle never call it themselves.
// Callers who want accent-insensitive matching apply it to both
// dictionary entries and haystacks before handing them to a Handle.
func NormalizeString(s string) string {
	return normalize.StripAccents(s)
}
