// Package icons: This file assembles the Apple .icns container.
// The container is a header followed by type tagged chunks:
//
//	"icns" | total length (uint32, big endian)
//	type code | chunk length (uint32, big endian, includes these 8 bytes) | payload
//	...
//
// The total length covers the header itself. No padding, alignment or
// checksum is involved; macOS only needs this subset to read PNG based
// renditions.
package icons

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"icongen/utilities/logger"
)

const (
	// headerSize is the size of the file header and of every chunk header.
	headerSize = 8
)

// icnsMagic opens every .icns file.
var icnsMagic = mustTypeCode("icns")

// ErrContainerTooLarge is returned when the container length does not fit
// the 32-bit length field.
var ErrContainerTooLarge = errors.New("icns container exceeds 4 GiB")

// IconEntry is one rendition: its type code and the already encoded image
// bytes. The payload is opaque to the writer.
type IconEntry struct {
	Type    TypeCode
	Payload []byte
}

// Len returns the chunk length written for the entry, header included.
func (e IconEntry) Len() int64 {
	return headerSize + int64(len(e.Payload))
}

// IcnsFile is an ordered list of entries. Entries are written in the order
// they were added.
type IcnsFile struct {
	Entries []IconEntry
}

// Append adds an entry with an explicit type code.
func (f *IcnsFile) Append(entry IconEntry) {
	f.Entries = append(f.Entries, entry)
}

// Add resolves label with TypeCodeForLabel and appends the payload under
// the resulting code. A label that maps to no type code is skipped with a
// warning and Add reports false; the rest of the icon set still produces a
// usable file.
func (f *IcnsFile) Add(label string, payload []byte) bool {
	code, ok := TypeCodeForLabel(label)
	if !ok {
		logger.Warn("No icns type for %s, skipping", label)
		return false
	}
	f.Append(IconEntry{Type: code, Payload: payload})
	return true
}

// TotalSize returns the value of the header length field:
// 8 + Σ(8 + len(payload)).
func (f *IcnsFile) TotalSize() int64 {
	total := int64(headerSize)
	for _, entry := range f.Entries {
		total += entry.Len()
	}
	return total
}

// checkedSize returns TotalSize, or ErrContainerTooLarge when it does not
// fit the header length field.
func (f *IcnsFile) checkedSize() (int64, error) {
	total := f.TotalSize()
	if total > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes", ErrContainerTooLarge, total)
	}
	return total, nil
}

// WriteTo writes the container to w in a single pass.
func (f *IcnsFile) WriteTo(w io.Writer) (int64, error) {
	total, err := f.checkedSize()
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	writeChunkHeader(cw, icnsMagic, uint32(total))
	for _, entry := range f.Entries {
		writeChunkHeader(cw, entry.Type, uint32(entry.Len()))
		cw.Write(entry.Payload)
	}
	return cw.n, cw.err
}

// Bytes returns the encoded container.
func (f *IcnsFile) Bytes() ([]byte, error) {
	total, err := f.checkedSize()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(int(total))
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteIcns encodes entries, in order, into an .icns container. Zero
// entries give the 8-byte header-only container.
func WriteIcns(entries []IconEntry) ([]byte, error) {
	file := IcnsFile{Entries: entries}
	return file.Bytes()
}

// WriteIcnsFile writes the container to path. On failure a partially
// written file may be left behind; it is regenerated on the next run.
func WriteIcnsFile(path string, file *IcnsFile) (int64, error) {
	out, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	n, err := file.WriteTo(out)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", path, err)
	}
	return n, nil
}

// writeChunkHeader writes a type code followed by a big endian length.
func writeChunkHeader(w io.Writer, code TypeCode, length uint32) {
	var header [headerSize]byte
	copy(header[:4], code[:])
	binary.BigEndian.PutUint32(header[4:], length)
	w.Write(header[:])
}

// countingWriter counts written bytes and keeps the first error; later
// writes become no-ops.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
