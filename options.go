// SPDX-License-Identifier: EPL-2.0

package audioexp

import (
	"io"
	"log"

	"github.com/ik5/audioexp/formats/wav"
)

// OffsetMode selects how a millisecond offset becomes a starting frame.
type OffsetMode uint8

const (
	// OffsetTruncating computes (ms/1000)*rate, so sub-second offsets fall
	// back to the start of the second. Existing callers depend on it.
	OffsetTruncating OffsetMode = iota
	// OffsetPrecise computes ms*rate/1000, rounded down.
	OffsetPrecise
)

// StartingFrame converts startingTimeMS to a frame index. The arithmetic is
// 64-bit, so a large offset is reported as past the end instead of wrapping.
func (m OffsetMode) StartingFrame(startingTimeMS, sampleRate uint32) uint64 {
	if m == OffsetPrecise {
		return uint64(startingTimeMS) * uint64(sampleRate) / 1000
	}

	return uint64(startingTimeMS/1000) * uint64(sampleRate)
}

// Option configures an IO.
type Option func(*IO)

// WithLogger sends informational records to l.
func WithLogger(l *log.Logger) Option {
	return func(o *IO) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOffsetMode picks the offset arithmetic of ReadWavFile.
func WithOffsetMode(m OffsetMode) Option {
	return func(o *IO) {
		o.offsetMode = m
	}
}

// WithRegistry sets the sample decoders used by ReadWavFile.
func WithRegistry(reg *wav.Registry) Option {
	return func(o *IO) {
		o.registry = reg
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
