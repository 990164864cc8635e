// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command fsc-catalog builds a CC3+ symbol catalog (.FSC) from one or more
// directories of PNG symbol images.  The source PNGs are not copied into
// the catalog; only references to their paths are stored.
//
// Usage:
//
//	fsc-catalog -o SeaMonsters.FSC "./symbols/*" ./more-symbols
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mapforge/fsc"
)

var output = flag.String("o", "", "path of the output .FSC file (required)")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s -o output.fsc <source-dir-or-glob> ...\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *output == "" || flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	dirs := expandSourceDirs(flag.Args())
	if len(dirs) == 0 {
		log.Fatal("error: no valid source directories found after expansion")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	b, err := fsc.NewBuilder(*output, fsc.WithLogger(logger))
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	defer b.Discard()

	totalSkipped := 0
	for i, dir := range dirs {
		abs, _ := filepath.Abs(dir)
		log.Printf("source directory %d:", i+1)
		log.Printf("  - %s", abs)
		res, err := b.AddDirectory(dir)
		if err != nil {
			log.Fatalf("error: %s: %v", dir, err)
		}
		for _, w := range res.Warnings {
			log.Printf("  warning: %s", w)
		}
		for _, f := range res.Failed {
			log.Printf("  warning: symbol %q dropped: %v", f.Name, f.Err)
		}
		log.Printf("  symbols created: %d", len(res.Symbols))
		totalSkipped += len(res.Skipped)
	}

	count := b.Count()
	if err := b.Finalize(); err != nil {
		log.Fatalf("error: %v", err)
	}

	log.Printf("Symbols created: %d", count)
	if totalSkipped > 0 {
		log.Printf("Files skipped due to incompatible filenames: %d", totalSkipped)
	}
	outAbs, _ := filepath.Abs(*output)
	log.Printf("FSC file written to: %s", outAbs)
}

// expandSourceDirs glob-expands each pattern, falling back to treating it
// as a literal path, and keeps only directories.
func expandSourceDirs(patterns []string) []string {
	var dirs []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err == nil && len(matches) > 0 {
			for _, m := range matches {
				if isDir(m) {
					dirs = append(dirs, filepath.Clean(m))
					log.Printf("  + expanded: %s", m)
				} else {
					log.Printf("  - skipped: %s (is a file, not a directory)", m)
				}
			}
			continue
		}
		if isDir(pattern) {
			dirs = append(dirs, filepath.Clean(pattern))
			log.Printf("  + added literal directory: %s", pattern)
		} else {
			log.Printf("  - warning: source directory not found: %s", pattern)
		}
	}
	return dirs
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
