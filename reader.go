// Copyright 2026 The fsc Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package fsc

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mapforge/fsc/internal/record"
)

// Catalog is a read-only view of a finished catalog file.  The format has
// no index: record boundaries are recovered by walking each record's
// self-declared length field.
type Catalog struct {
	data   []byte
	header record.FileID
}

// OpenCatalog maps the catalog at path read-only and validates its header.
func OpenCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Size() < record.FileIDSize {
		return nil, fmt.Errorf("catalog too short: %d < %d", st.Size(), record.FileIDSize)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		_ = unix.Munmap(data)
		return nil, fmt.Errorf("madvise: %w", err)
	}

	header, err := record.ParseFileID(data)
	if err != nil {
		_ = unix.Munmap(data)
		return nil, err
	}

	return &Catalog{data: data, header: header}, nil
}

// Header returns the catalog's decoded file header.
func (c *Catalog) Header() record.FileID { return c.header }

// Size returns the catalog's total byte size.
func (c *Catalog) Size() int { return len(c.data) }

// Walk calls fn for every record after the file header, in file order.
// Each rec slice covers one whole record, entity header included, and
// points into the mapping: it must not be retained past fn's return or
// modified.  Walking stops at the first error.
func (c *Catalog) Walk(fn func(rec []byte) error) error {
	off := int64(record.FileIDSize)
	size := int64(len(c.data))
	for off < size {
		if off+4 > size {
			return fmt.Errorf("truncated record length at offset %d", off)
		}
		recLen := int64(binary.LittleEndian.Uint32(c.data[off:]))
		if recLen < 4 || off+recLen > size {
			return fmt.Errorf("bad record length %d at offset %d -- catalog corrupted", recLen, off)
		}
		if err := fn(c.data[off : off+recLen]); err != nil {
			return err
		}
		off += recLen
	}
	return nil
}

// Close unmaps the catalog.  Record slices handed out by Walk become
// invalid.
func (c *Catalog) Close() error {
	if c.data == nil {
		return nil
	}
	data := c.data
	c.data = nil
	return unix.Munmap(data)
}
