// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fsc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mapforge/fsc/internal/record"
)

var errBuilderFinished = errors.New("fsc: builder already finalized")

// BuilderOption configures a Builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	logger     *slog.Logger
	infoBlocks []byte
}

// WithLogger sets an optional logger for diagnostics (skipped files,
// grouping warnings, duplicate names).  If not provided, no logging output
// is produced.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(opts *builderOptions) {
		opts.logger = logger
	}
}

// WithInfoBlocks supplies the opaque, pre-built catalog metadata placed
// immediately after the file header.  The builder copies it verbatim.
func WithInfoBlocks(blocks []byte) BuilderOption {
	return func(opts *builderOptions) {
		opts.infoBlocks = append([]byte(nil), blocks...)
	}
}

// Builder writes a symbol catalog: the 128-byte file header, the info
// blocks, then every added symbol in order.  Output goes to a temporary
// file in the destination directory and only appears at the destination
// path on Finalize, so a failed batch never leaves a partial catalog.
type Builder struct {
	resultPath string
	f          *os.File
	w          *bufio.Writer
	names      stringSet
	count      int
	finished   bool
	logger     *slog.Logger
}

// NewBuilder creates a Builder that will write the catalog to resultPath.
func NewBuilder(resultPath string, opts ...BuilderOption) (*Builder, error) {
	var options builderOptions
	options.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&options)
	}

	resultPath, err := filepath.Abs(resultPath)
	if err != nil {
		return nil, fmt.Errorf("filepath.Abs: %w", err)
	}
	dir := filepath.Dir(resultPath)
	f, err := os.CreateTemp(dir, "fsc-builder.*.fsc")
	if err != nil {
		return nil, fmt.Errorf("CreateTemp failed (may need permissions for dir %q): %w", dir, err)
	}

	b := &Builder{
		resultPath: resultPath,
		f:          f,
		w:          bufio.NewWriter(f),
		names:      make(stringSet),
		logger:     options.logger,
	}

	hdr := record.NewFileID()
	if _, err := b.w.Write(hdr.MarshalBytes()); err != nil {
		b.Discard()
		return nil, fmt.Errorf("write header: %w", err)
	}
	if len(options.infoBlocks) > 0 {
		if _, err := b.w.Write(options.infoBlocks); err != nil {
			b.Discard()
			return nil, fmt.Errorf("write info blocks: %w", err)
		}
	}
	return b, nil
}

// Add appends one assembled symbol to the catalog.
func (b *Builder) Add(sym *Symbol) error {
	if b.finished {
		return errBuilderFinished
	}
	if b.names.Contains(sym.Name()) {
		// The format tolerates duplicates; the symbol browser shows both.
		b.logger.Warn("duplicate symbol name", "name", sym.Name())
	}
	b.names.Add(sym.Name())
	if _, err := b.w.Write(sym.Bytes()); err != nil {
		return fmt.Errorf("write symbol %q: %w", sym.Name(), err)
	}
	b.count++
	return nil
}

// AddDirectory scans dir, assembles its symbols, and adds them all.  Scan
// diagnostics are logged and returned; per-symbol failures do not abort
// the batch.
func (b *Builder) AddDirectory(dir string) (*ScanResult, error) {
	res, err := ScanDirectory(dir)
	if err != nil {
		return nil, err
	}
	for _, name := range res.Skipped {
		b.logger.Warn("skipping file with legacy-incompatible filename", "dir", dir, "file", name)
	}
	for _, w := range res.Warnings {
		b.logger.Warn("unhandled symbol group", "dir", dir, "key", w.Key, "files", w.Files)
	}
	for _, f := range res.Failed {
		b.logger.Warn("symbol construction failed", "dir", dir, "name", f.Name, "err", f.Err)
	}
	for _, sym := range res.Symbols {
		if err := b.Add(sym); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Count returns the number of symbols added so far.
func (b *Builder) Count() int { return b.count }

// Finalize flushes the catalog and atomically moves it to the destination
// path.
func (b *Builder) Finalize() error {
	if b.finished {
		return errBuilderFinished
	}
	b.finished = true

	if err := b.w.Flush(); err != nil {
		b.removeTemp()
		return fmt.Errorf("flush: %w", err)
	}
	if err := b.f.Close(); err != nil {
		b.removeTemp()
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(b.f.Name(), b.resultPath); err != nil {
		b.removeTemp()
		return fmt.Errorf("os.Rename: %w", err)
	}
	return nil
}

// Discard abandons the build and removes the temporary file.  It does
// nothing after Finalize.
func (b *Builder) Discard() {
	if b.finished {
		return
	}
	b.finished = true
	_ = b.f.Close()
	b.removeTemp()
}

func (b *Builder) removeTemp() {
	_ = os.Remove(b.f.Name())
}

type stringSet map[string]struct{}

func (set stringSet) Contains(s string) bool {
	_, ok := set[s]
	return ok
}

func (set stringSet) Add(s string) {
	set[s] = struct{}{}
}
