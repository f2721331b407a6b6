// ===================================================================================
// File:        main.go
// Package:     main
// Description: Example usage of the ahocorasick multi-pattern string matching package.
//
//	This program demonstrates the key operations of the package:
//	- Loading a JSON pattern-to-keyword dictionary from disk
//	- Building a Handle with configurable case sensitivity and word-boundary
//	  filtering
//	- Scanning a haystack taken from an argument or stdin
//	- Printing every match as JSON
//
// Author:      Dana Stiles
// Created:     June 8, 2026
//
// Usage:
//
//	To run the program:
//	$ go run . --dictionary patterns.json "some haystack text"
//
// ===================================================================================

// Command ahocorasick is a thin CLI around the ahocorasick package: it
// reads a JSON dictionary file and scans a haystack (from an argument or
// stdin), printing every match as JSON.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	jsonlib "github.com/goccy/go-json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	ahocorasick "github.com/dstilesr/aho-corasick"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

// flags default to the Handle construction parameters Builder itself
// defaults to; an AHOCORASICK_ prefixed environment variable can
// override either default before command-line flags are parsed,
// mirroring the env-over-defaults layering tomtom215-cartographus
// applies with koanf.
type flags struct {
	dictionaryPath string
	caseSensitive  bool
	checkBounds    bool
}

func loadDefaults() (caseSensitive, checkBounds bool) {
	k := koanf.New(".")
	caseSensitive, checkBounds = true, false

	if err := k.Load(env.Provider("AHOCORASICK_", ".", nil), nil); err != nil {
		return
	}
	if k.Exists("AHOCORASICK_CASE_SENSITIVE") {
		caseSensitive = k.Bool("AHOCORASICK_CASE_SENSITIVE")
	}
	if k.Exists("AHOCORASICK_CHECK_BOUNDS") {
		checkBounds = k.Bool("AHOCORASICK_CHECK_BOUNDS")
	}
	return
}

func newRootCmd() *cobra.Command {
	defaultCaseSensitive, defaultCheckBounds := loadDefaults()
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "ahocorasick",
		Short: "Multi-pattern substring search over Unicode text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, args, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.dictionaryPath, "dictionary", "d", "", "path to a JSON file mapping pattern -> keyword")
	fs.BoolVar(&f.caseSensitive, "case-sensitive", defaultCaseSensitive, "match patterns case-sensitively")
	fs.BoolVar(&f.checkBounds, "check-bounds", defaultCheckBounds, "reject matches without word boundaries on both sides")
	_ = cmd.MarkFlagRequired("dictionary")

	return cmd
}

func run(f *flags, args []string, out io.Writer) error {
	dict, err := loadDictionary(f.dictionaryPath)
	if err != nil {
		return errors.Wrap(err, "load dictionary")
	}

	haystack, err := readHaystack(args)
	if err != nil {
		return errors.Wrap(err, "read haystack")
	}

	start := time.Now()
	h, err := ahocorasick.NewBuilder().
		CaseSensitive(f.caseSensitive).
		CheckBounds(f.checkBounds).
		Build(dict)
	if err != nil {
		return errors.Wrap(err, "build automaton")
	}

	matches := h.Search(haystack)

	log.Info().
		Int("patterns", len(dict)).
		Int("matches", len(matches)).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")

	enc := jsonlib.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

func loadDictionary(path string) (ahocorasick.Dictionary, error) {
	if path == "" {
		return nil, errors.New("--dictionary is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dict ahocorasick.Dictionary
	if err := jsonlib.Unmarshal(data, &dict); err != nil {
		return nil, errors.Wrap(err, "parse dictionary JSON")
	}
	return dict, nil
}

func readHaystack(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
