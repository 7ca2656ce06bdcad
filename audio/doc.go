// SPDX-License-Identifier: EPL-2.0

// Package audio holds the values that cross the boundary between the WAV
// codec and its callers.
//
// # Metadata
//
// WavFileMeta is an immutable description of a WAV file:
//
//	meta := audio.NewWavFileMeta(16, 2, 44100, true, 44100)
//	meta.Length()          // 88200 samples
//	meta.DurationSeconds() // 1
//
// Length and DurationSeconds are derived from the other fields, so a value
// built by NewWavFileMeta is always consistent.
//
// # Sample Buffers
//
// Samples travel as go-audio buffers. Adopt hands an int16 slice to a
// PCMBuffer without copying it:
//
//	buf := audio.Adopt(samples, meta.Format())
//	// buf.I16 is samples
//
// View goes the other way for writers. It borrows the I16 slice of an int16
// PCMBuffer and copies an IntBuffer once, rejecting values that do not fit in
// 16 bits:
//
//	samples, err := audio.View(buf)
//
// # Sample Format
//
// Samples are signed 16-bit integers, interleaved frame by frame: channel 0
// of frame 0, channel 1 of frame 0, channel 0 of frame 1, and so on.
package audio
