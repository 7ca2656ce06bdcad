// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"math"

	"github.com/ik5/audioexp/audio"
)

// Format is the format tag stored in the fmt chunk.
type Format uint16

const (
	FormatPCM       Format = 1
	FormatIEEEFloat Format = 3
)

func (f Format) String() string {
	switch f {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	default:
		return fmt.Sprintf("format(0x%04x)", uint16(f))
	}
}

// Spec is the format descriptor read from, or written to, a fmt chunk.
type Spec struct {
	Format        Format
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
}

// SpecFromMeta returns the descriptor that meta was decoded from.
func SpecFromMeta(meta audio.WavFileMeta) Spec {
	format := FormatIEEEFloat
	if meta.SampleFormatInt() {
		format = FormatPCM
	}

	return Spec{
		Format:        format,
		Channels:      meta.Channels(),
		SampleRate:    meta.SampleRate(),
		BitsPerSample: meta.BitsPerSample(),
	}
}

// IsInt reports PCM integer samples.
func (s Spec) IsInt() bool { return s.Format == FormatPCM }

// SampleSize is the size of one sample in bytes.
func (s Spec) SampleSize() int { return int(s.BitsPerSample) / 8 }

// BlockAlign is the size of one frame in bytes. The fmt chunk stores it in
// 16 bits; validate rejects frames that do not fit.
func (s Spec) BlockAlign() uint32 { return uint32(s.Channels) * uint32(s.BitsPerSample/8) }

// ByteRate is the number of bytes per second of audio.
func (s Spec) ByteRate() uint64 { return uint64(s.SampleRate) * uint64(s.BlockAlign()) }

// validate checks the fields a reader can make sense of.
func (s Spec) validate() error {
	switch s.Format {
	case FormatPCM:
		switch s.BitsPerSample {
		case 8, 16, 24, 32:
		default:
			return fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedBitDepth, s.BitsPerSample)
		}
	case FormatIEEEFloat:
		if s.BitsPerSample != 32 {
			return fmt.Errorf("%w: %d-bit float", ErrUnsupportedBitDepth, s.BitsPerSample)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormatTag, s.Format)
	}
	if s.Channels == 0 {
		return fmt.Errorf("%w: zero channels", ErrUnsupportedWavLayout)
	}
	if s.SampleRate == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrUnsupportedWavLayout)
	}
	if s.BlockAlign() > math.MaxUint16 {
		return fmt.Errorf("%w: %d-byte frames", ErrUnsupportedWavLayout, s.BlockAlign())
	}

	return nil
}
