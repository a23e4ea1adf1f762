package icons

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, code string, payload string) IconEntry {
	t.Helper()
	tc, err := ParseTypeCode(code)
	require.NoError(t, err)
	return IconEntry{Type: tc, Payload: []byte(payload)}
}

func TestWriteIcnsEmpty(t *testing.T) {
	t.Parallel()

	data, err := WriteIcns(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x69, 0x63, 0x6E, 0x73, 0, 0, 0, 8}, data)
}

func TestWriteIcnsSingleEntry(t *testing.T) {
	t.Parallel()

	data, err := WriteIcns([]IconEntry{entry(t, "ic08", "0123456789")})
	require.NoError(t, err)

	require.Len(t, data, 26)
	assert.Equal(t, "icns", string(data[0:4]))
	assert.Equal(t, uint32(26), binary.BigEndian.Uint32(data[4:8]))
	assert.Equal(t, "ic08", string(data[8:12]))
	assert.Equal(t, uint32(18), binary.BigEndian.Uint32(data[12:16]))
	assert.Equal(t, "0123456789", string(data[16:]))
}

func TestWriteIcnsTotalSize(t *testing.T) {
	t.Parallel()

	entries := []IconEntry{
		entry(t, "is32", "a"),
		entry(t, "ic10", ""),
		entry(t, "ic13", string(bytes.Repeat([]byte{0xff}, 1000))),
		entry(t, "l32 ", "payload"),
	}

	data, err := WriteIcns(entries)
	require.NoError(t, err)

	want := 8
	for _, e := range entries {
		want += 8 + len(e.Payload)
	}
	assert.Len(t, data, want)
	assert.Equal(t, uint32(want), binary.BigEndian.Uint32(data[4:8]))

	// walk the chunks and sum their lengths
	sum := 8
	for offset := 8; offset < len(data); {
		length := int(binary.BigEndian.Uint32(data[offset+4 : offset+8]))
		sum += length
		offset += length
	}
	assert.Equal(t, want, sum)
}

func TestWriteIcnsRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []IconEntry{
		entry(t, "ic12", "large"),
		entry(t, "s32 ", "small retina"),
		entry(t, "is32", "small"),
		entry(t, "ic08", "medium"),
	}

	data, err := WriteIcns(entries)
	require.NoError(t, err)

	parsed, err := ReadIcns(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, entries, parsed.Entries)
}

func TestIcnsFileAddSkipsUnmappable(t *testing.T) {
	t.Parallel()

	var file IcnsFile
	assert.True(t, file.Add("icon_16x16.png", []byte("sixteen")))
	assert.False(t, file.Add("icon_64x64.png", []byte("sixty four")))
	assert.True(t, file.Add("icon_512x512@2x.png", []byte("retina")))

	data, err := file.Bytes()
	require.NoError(t, err)

	parsed, err := ReadIcns(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, parsed.Entries, 2)
	assert.Equal(t, "is32", parsed.Entries[0].Type.String())
	assert.Equal(t, "ic13", parsed.Entries[1].Type.String())
	assert.Equal(t, uint32(8+8+7+8+6), binary.BigEndian.Uint32(data[4:8]))
}

func TestWriteIcnsKeepsPadding(t *testing.T) {
	t.Parallel()

	data, err := WriteIcns([]IconEntry{entry(t, "s32 ", "x"), entry(t, "l32 ", "y")})
	require.NoError(t, err)

	assert.Equal(t, "s32 ", string(data[8:12]))
	assert.Equal(t, "l32 ", string(data[17:21]))
}

// An oversized container is rejected before any output buffer is reserved.
func TestBytesTooLarge(t *testing.T) {
	// 65 chunks sharing one 64 MiB payload declare more than 4 GiB.
	payload := make([]byte, 64<<20)
	var file IcnsFile
	for range 65 {
		file.Append(IconEntry{Type: mustTypeCode("ic10"), Payload: payload})
	}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	data, err := file.Bytes()
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, ErrContainerTooLarge)
	assert.Nil(t, data)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))

	_, err = file.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, ErrContainerTooLarge)
}

type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.budget {
		n := w.budget
		w.budget = 0
		return n, errors.New("disk full")
	}
	w.budget -= len(p)
	return len(p), nil
}

func TestWriteToReportsFirstError(t *testing.T) {
	t.Parallel()

	file := IcnsFile{Entries: []IconEntry{entry(t, "ic08", "0123456789")}}
	n, err := file.WriteTo(&failingWriter{budget: 12})
	require.EqualError(t, err, "disk full")
	assert.Equal(t, int64(12), n)
}

func TestWriteIcnsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "icon.icns")
	file := &IcnsFile{Entries: []IconEntry{entry(t, "ic10", "png")}}

	n, err := WriteIcnsFile(path, file)
	require.NoError(t, err)
	assert.Equal(t, int64(19), n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, 19)
}

func TestWriteIcnsFileMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing", "icon.icns")
	_, err := WriteIcnsFile(path, &IcnsFile{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
