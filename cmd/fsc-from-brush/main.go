// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command fsc-from-brush extracts PNGs from an Adobe brush (.abr) file
// using the external abr2png tool and builds a symbol catalog referencing
// them.  The catalog is named after the output directory.
//
// Usage:
//
//	fsc-from-brush -png -varicolor -brush monsters.abr -out ./monsters
package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mapforge/fsc"
)

var (
	pngCreate = flag.Bool("png", false, "extract plain PNG files from the brush")
	varicolor = flag.Bool("varicolor", false, "extract varicolor (CC3) PNG pairs from the brush")
	brushFile = flag.String("brush", "", "path to the input Adobe brush (.abr) file (required)")
	outputDir = flag.String("out", "", "destination directory for the extracted symbols (required)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *brushFile == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !*pngCreate && !*varicolor {
		log.Fatal("no operation flags specified (-png or -varicolor)")
	}
	if st, err := os.Stat(*brushFile); err != nil || st.IsDir() {
		log.Fatalf("error: brush file does not exist: %s", *brushFile)
	}
	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("error: %v", err)
	}
	outDir, err := filepath.Abs(*outputDir)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	brush, err := filepath.Abs(*brushFile)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	log.Print("processing initiated...")
	if *pngCreate {
		runExtract(outDir, "-png", brush)
	}
	if *varicolor {
		runExtract(outDir, "-cc3", brush)
	}

	catalogPath := filepath.Join(outDir, filepath.Base(outDir)+".FSC")
	b, err := fsc.NewBuilder(catalogPath)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	defer b.Discard()
	res, err := b.AddDirectory(outDir)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	for _, w := range res.Warnings {
		log.Printf("warning: %s", w)
	}
	if err := b.Finalize(); err != nil {
		log.Fatalf("error: %v", err)
	}
	log.Printf("Symbols created: %d", len(res.Symbols))
	log.Printf("FSC file written to: %s", catalogPath)
}

// runExtract invokes abr2png with its working directory set to outDir, so
// the extracted PNGs land next to the catalog.
func runExtract(outDir, mode, brush string) {
	cmd := exec.Command("abr2png", mode, brush)
	cmd.Dir = outDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		log.Fatalf("abr2png %s: %v", mode, err)
	}
}
