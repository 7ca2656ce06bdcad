// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

const (
	headerSize     = 44
	pcmFmtSize     = 16
	riffSizeOffset = 4
	dataSizeOffset = 40

	// riffSize covers everything after the RIFF id and size fields.
	maxDataSize = 1<<32 - 1 - (headerSize - 8)
)

// encodeHeader lays out the canonical 44-byte header: RIFF, a 16-byte fmt
// chunk and the data chunk header.
func encodeHeader(spec Spec, dataSize uint32) []byte {
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], headerSize-8+dataSize)
	copy(header[8:12], riff.WavFormatID[:])

	// fmt chunk (24 bytes)
	copy(header[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[16:20], pcmFmtSize)
	binary.LittleEndian.PutUint16(header[20:22], uint16(spec.Format))
	binary.LittleEndian.PutUint16(header[22:24], spec.Channels)
	binary.LittleEndian.PutUint32(header[24:28], spec.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], uint32(spec.ByteRate()))
	binary.LittleEndian.PutUint16(header[32:34], uint16(spec.BlockAlign()))
	binary.LittleEndian.PutUint16(header[34:36], spec.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header
}

// validateWriteSpec accepts what int16 samples can be written as.
func validateWriteSpec(spec Spec) error {
	if spec.Format != FormatPCM || spec.BitsPerSample != 16 {
		return fmt.Errorf("%w: cannot write int16 samples as %d-bit %s",
			ErrOnlyPCM16bitSupported, spec.BitsPerSample, spec.Format)
	}
	if spec.Channels == 0 {
		return fmt.Errorf("%w: zero channels", ErrUnsupportedWavLayout)
	}
	if spec.SampleRate == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrUnsupportedWavLayout)
	}
	if spec.BlockAlign() > math.MaxUint16 || spec.ByteRate() > math.MaxUint32 {
		return fmt.Errorf("%w: %d channels at %d Hz do not fit the fmt chunk",
			ErrUnsupportedWavLayout, spec.Channels, spec.SampleRate)
	}

	return nil
}
