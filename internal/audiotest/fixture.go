// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Chunk is an extra RIFF chunk placed between fmt and data.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a test file. The zero value of every size field means
// "compute it"; set the override fields to build broken headers.
type WAV struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16

	// FmtExtra is appended to the 16 standard fmt bytes.
	FmtExtra []byte
	// Before is written ahead of the fmt chunk, After between fmt and data.
	Before []Chunk
	After  []Chunk
	// Data holds the raw bytes of the data chunk.
	Data []byte

	NoFmt            bool
	NoData           bool
	DataSizeOverride uint32
	// PadData appends the RIFF pad byte after odd-sized Data.
	PadData bool
}

// PCM16 returns a 16-bit PCM description holding samples.
func PCM16(sampleRate uint32, channels uint16, samples []int16) WAV {
	return WAV{
		FormatTag:     1,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: 16,
		Data:          Int16Bytes(samples),
	}
}

// Silence returns a description with frames zero-filled frames.
func Silence(formatTag uint16, sampleRate uint32, channels, bits uint16, frames int) WAV {
	return WAV{
		FormatTag:     formatTag,
		Channels:      channels,
		SampleRate:    sampleRate,
		BitsPerSample: bits,
		Data:          make([]byte, frames*int(channels)*int(bits/8)),
	}
}

// Int16Bytes lays samples out little-endian.
func Int16Bytes(samples []int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}

	return b
}

func writeChunk(buf *bytes.Buffer, c Chunk) {
	buf.WriteString(c.ID)
	binary.Write(buf, binary.LittleEndian, uint32(len(c.Data)))
	buf.Write(c.Data)
	if len(c.Data)%2 == 1 {
		buf.WriteByte(0) // Padding byte
	}
}

// Bytes renders the whole file.
func (w WAV) Bytes() []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range w.Before {
		writeChunk(body, c)
	}

	if !w.NoFmt {
		blockAlign := w.Channels * (w.BitsPerSample / 8)

		body.WriteString("fmt ")
		binary.Write(body, binary.LittleEndian, uint32(16+len(w.FmtExtra)))
		binary.Write(body, binary.LittleEndian, w.FormatTag)
		binary.Write(body, binary.LittleEndian, w.Channels)
		binary.Write(body, binary.LittleEndian, w.SampleRate)
		binary.Write(body, binary.LittleEndian, w.SampleRate*uint32(blockAlign))
		binary.Write(body, binary.LittleEndian, blockAlign)
		binary.Write(body, binary.LittleEndian, w.BitsPerSample)
		body.Write(w.FmtExtra)
	}

	for _, c := range w.After {
		writeChunk(body, c)
	}

	if !w.NoData {
		size := uint32(len(w.Data))
		if w.DataSizeOverride != 0 {
			size = w.DataSizeOverride
		}
		body.WriteString("data")
		binary.Write(body, binary.LittleEndian, size)
		body.Write(w.Data)
		if w.PadData && len(w.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// WriteFile writes w under t.TempDir and returns the path.
func (w WAV) WriteFile(t testing.TB, name string) string {
	t.Helper()

	return WriteBytes(t, name, w.Bytes())
}

// WriteBytes writes data under t.TempDir and returns the path.
func WriteBytes(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
