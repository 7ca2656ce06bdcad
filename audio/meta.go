// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// WavFileMeta describes a decoded WAV file. It is a plain value: it holds no
// file handle and never changes after construction.
type WavFileMeta struct {
	bitsPerSample   uint16
	channels        uint16
	sampleRate      uint32
	sampleFormatInt bool
	duration        uint32
	length          uint32
	durationSeconds uint32
}

// NewWavFileMeta builds metadata from the format fields and the frame count.
// Length and DurationSeconds are derived, so
// Length == Duration*Channels and DurationSeconds == Duration/SampleRate
// always hold. A zero sampleRate yields DurationSeconds == 0.
func NewWavFileMeta(bitsPerSample, channels uint16, sampleRate uint32, sampleFormatInt bool, duration uint32) WavFileMeta {
	m := WavFileMeta{
		bitsPerSample:   bitsPerSample,
		channels:        channels,
		sampleRate:      sampleRate,
		sampleFormatInt: sampleFormatInt,
		duration:        duration,
		length:          duration * uint32(channels),
	}
	if sampleRate > 0 {
		// TODO: switch to a float once callers can take sub-second precision.
		m.durationSeconds = duration / sampleRate
	}

	return m
}

// BitsPerSample is the sample width in bits (8, 16, 24 or 32).
func (m WavFileMeta) BitsPerSample() uint16 { return m.bitsPerSample }

// Channels is the number of interleaved channels.
func (m WavFileMeta) Channels() uint16 { return m.channels }

// SampleRate is the number of frames per second.
func (m WavFileMeta) SampleRate() uint32 { return m.sampleRate }

// SampleFormatInt reports PCM integer samples; false means IEEE float.
func (m WavFileMeta) SampleFormatInt() bool { return m.sampleFormatInt }

// Duration is the number of frames.
func (m WavFileMeta) Duration() uint32 { return m.duration }

// Length is the number of samples across all channels.
func (m WavFileMeta) Length() uint32 { return m.length }

// DurationSeconds is Duration/SampleRate with the remainder dropped.
func (m WavFileMeta) DurationSeconds() uint32 { return m.durationSeconds }

// Format returns the go-audio format matching the metadata.
func (m WavFileMeta) Format() *goaudio.Format {
	return &goaudio.Format{
		NumChannels: int(m.channels),
		SampleRate:  int(m.sampleRate),
	}
}

// String renders the format fields only.
func (m WavFileMeta) String() string {
	return fmt.Sprintf("WavFileMeta(bits_per_sample=%d, channels=%d, sample_rate=%d, sample_format_int=%t)",
		m.bitsPerSample, m.channels, m.sampleRate, m.sampleFormatInt)
}
