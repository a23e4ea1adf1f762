// Package icons: This file parses .icns containers back into their entries.
// It is used to inspect generated files and to verify the writer.
package icons

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Errors returned by ReadIcns. They are wrapped with details, use errors.Is.
var (
	ErrBadMagic       = errors.New("not an icns container")
	ErrTruncated      = errors.New("icns container is truncated")
	ErrBadChunkLength = errors.New("invalid icns chunk length")
	ErrSizeMismatch   = errors.New("icns length field does not match content")
)

// ReadIcns parses a container. The declared total length must equal the
// bytes actually consumed; trailing data after the declared end is
// reported as ErrSizeMismatch.
func ReadIcns(r io.Reader) (*IcnsFile, error) {
	br := bufio.NewReader(r)

	code, total, err := readChunkHeader(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrTruncated)
		}
		return nil, err
	}
	if code != icnsMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, code.String())
	}
	if total < headerSize {
		return nil, fmt.Errorf("%w: total length %d", ErrSizeMismatch, total)
	}

	file := &IcnsFile{}
	consumed := int64(headerSize)
	for consumed < int64(total) {
		code, length, err := readChunkHeader(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %d of %d bytes", ErrTruncated, consumed, total)
			}
			return nil, err
		}
		if length < headerSize || consumed+int64(length) > int64(total) {
			return nil, fmt.Errorf("%w: chunk %q declares %d bytes at offset %d", ErrBadChunkLength, code.String(), length, consumed)
		}

		payload, err := readPayload(br, int64(length-headerSize))
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %q: %v", ErrTruncated, code.String(), err)
		}

		file.Append(IconEntry{Type: code, Payload: payload})
		consumed += int64(length)
	}

	if _, err := br.Peek(1); err == nil {
		return nil, fmt.Errorf("%w: data after declared length %d", ErrSizeMismatch, total)
	}
	return file, nil
}

// readPayload reads exactly n bytes. Memory grows with the data that
// arrives, never to n up front.
func readPayload(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	read, err := io.CopyN(&buf, r, n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%d of %d bytes: %w", read, n, io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// readChunkHeader reads a type code and a big endian length. A clean end of
// input before the first byte is io.EOF; a partial header is ErrTruncated.
func readChunkHeader(r io.Reader) (TypeCode, uint32, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return TypeCode{}, 0, fmt.Errorf("%w: partial chunk header", ErrTruncated)
		}
		return TypeCode{}, 0, err
	}

	var code TypeCode
	copy(code[:], header[:4])
	return code, binary.BigEndian.Uint32(header[4:]), nil
}
