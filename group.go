// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fsc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mapforge/fsc/internal/legacy"
)

// variantPattern matches "<base> vari_01.png" / "<base> vari_02.png"; the
// base name is everything before the whitespace-separated suffix.
var variantPattern = regexp.MustCompile(`(?i)^(.*?)\s+vari_0[12]\.png$`)

// subgroupPattern splits a group key into a prefix and its trailing digits.
// Keys sharing a prefix form a subgroup, which decides the grouped flag.
var subgroupPattern = regexp.MustCompile(`^(.*?)(\d+)$`)

// Descriptor names one symbol to build: a catalog name, one filename (or
// the sorted variant pair), and whether the symbol joins a symbol group.
type Descriptor struct {
	Name      string
	Files     []string
	Varicolor bool
	Grouped   bool
}

// Warning reports a group key whose file count maps to no symbol kind.
// The group is dropped; the batch continues.
type Warning struct {
	Key   string
	Files []string
}

func (w Warning) String() string {
	return fmt.Sprintf("unhandled group for %q: %s", w.Key, strings.Join(w.Files, ", "))
}

// Classification is the outcome of grouping one directory listing.
type Classification struct {
	Symbols  []Descriptor
	Warnings []Warning
	// Skipped lists PNG filenames excluded because they cannot be
	// represented in the legacy encoding.
	Skipped []string
}

type groupEntry struct {
	file    string
	variant bool
}

// Classify groups a directory listing into symbol descriptors.  Only names
// ending in ".png" (case-insensitive) participate.  The listing is sorted
// first so that results do not depend on filesystem enumeration order.
//
// A variant pair (exactly two files matching the variant suffix) becomes
// one varicolor symbol; a lone plain file becomes one simple symbol; any
// other cardinality is returned as a Warning and emits nothing.  A symbol
// is grouped when its key's numeric-suffix prefix is shared: by a sibling
// variant pair for varicolor symbols, or by another plain file for simple
// ones.
func Classify(filenames []string) Classification {
	names := make([]string, len(filenames))
	copy(names, filenames)
	sort.Strings(names)

	var cl Classification
	groups := make(map[string][]groupEntry)
	var keys []string
	// Per-prefix file counts, kept separately for variant-pattern members
	// and plain members.
	subVariant := make(map[string]int)
	subPlain := make(map[string]int)

	for _, name := range names {
		if !strings.HasSuffix(strings.ToLower(name), ".png") {
			continue
		}
		if !legacy.Encodable(name) {
			cl.Skipped = append(cl.Skipped, name)
			continue
		}

		var key string
		m := variantPattern.FindStringSubmatch(name)
		if m != nil {
			key = m[1]
		} else {
			key = strings.TrimSuffix(name, filepath.Ext(name))
		}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], groupEntry{file: name, variant: m != nil})

		if sm := subgroupPattern.FindStringSubmatch(key); sm != nil {
			if m != nil {
				subVariant[sm[1]]++
			} else {
				subPlain[sm[1]]++
			}
		}
	}

	for _, key := range keys {
		entries := groups[key]
		switch {
		case len(entries) == 2 && entries[0].variant && entries[1].variant:
			// Sorted input guarantees vari_01 precedes vari_02, which
			// fixes image 1 as the color source and image 2 as the mask.
			pair := []string{entries[0].file, entries[1].file}
			// A single pair is not a group by itself; the prefix must be
			// shared with at least one sibling pair.
			grouped := false
			if sm := subgroupPattern.FindStringSubmatch(key); sm != nil {
				grouped = subVariant[sm[1]] > 2
			}
			cl.Symbols = append(cl.Symbols, Descriptor{
				Name:      key,
				Files:     pair,
				Varicolor: true,
				Grouped:   grouped,
			})

		case len(entries) == 1 && !entries[0].variant:
			grouped := false
			if sm := subgroupPattern.FindStringSubmatch(key); sm != nil {
				grouped = subPlain[sm[1]] > 1
			}
			cl.Symbols = append(cl.Symbols, Descriptor{
				Name:    key,
				Files:   []string{entries[0].file},
				Grouped: grouped,
			})

		default:
			files := make([]string, len(entries))
			for i, e := range entries {
				files[i] = e.file
			}
			cl.Warnings = append(cl.Warnings, Warning{Key: key, Files: files})
		}
	}

	return cl
}

// FailedSymbol records a symbol whose construction failed, typically
// because an image was missing or not a valid PNG.  The failure aborts
// that one symbol only.
type FailedSymbol struct {
	Name string
	Err  error
}

// ScanResult is the outcome of building symbols from one directory.
type ScanResult struct {
	Symbols  []*Symbol
	Warnings []Warning
	Skipped  []string
	Failed   []FailedSymbol
}

// ScanDirectory classifies the PNG files in dir and assembles a symbol for
// every emitted descriptor.  Per-symbol failures are collected in the
// result, not returned as errors; err is non-nil only when the directory
// itself cannot be read.
func ScanDirectory(dir string) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	cl := Classify(names)
	res := &ScanResult{Warnings: cl.Warnings, Skipped: cl.Skipped}
	for _, d := range cl.Symbols {
		var sym *Symbol
		var err error
		if d.Varicolor {
			sym, err = NewVaricolorSymbol(d.Name,
				filepath.Join(dir, d.Files[0]),
				filepath.Join(dir, d.Files[1]),
				d.Grouped)
		} else {
			sym, err = NewSimpleSymbol(d.Name,
				filepath.Join(dir, d.Files[0]),
				d.Grouped)
		}
		if err != nil {
			res.Failed = append(res.Failed, FailedSymbol{Name: d.Name, Err: err})
			continue
		}
		res.Symbols = append(res.Symbols, sym)
	}
	return res, nil
}
