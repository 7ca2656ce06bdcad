// SPDX-License-Identifier: EPL-2.0

// Package audioexp reads and writes WAV files as int16 sample buffers.
//
// It exposes three operations:
//   - ReadWavFileMetadata returns the format and length of a file
//   - ReadWavFile returns its samples from a millisecond offset
//   - WriteWavFile writes samples back under a given format
//
// # Reading
//
//	meta, err := audioexp.ReadWavFileMetadata("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(meta) // WavFileMeta(bits_per_sample=16, channels=2, ...)
//
//	buf, err := audioexp.ReadWavFile("audio.wav", 0)
//	// buf.I16 holds meta.Length() interleaved samples
//
// Samples are returned as a go-audio PCMBuffer whose I16 slice is the buffer
// the decoder filled; nothing is copied on the way out. Only mono and stereo
// 16-bit PCM files can be read as samples. Metadata can be read for any PCM
// or IEEE float file.
//
// # Offsets
//
// The starting frame is (startingTimeMS/1000)*SampleRate by default, so any
// offset below one second starts at frame 0. NewIO(WithOffsetMode(
// OffsetPrecise)) computes startingTimeMS*SampleRate/1000 instead. An offset
// that lands exactly on the last frame returns an empty buffer; one after it
// fails with KindOffsetPastEnd.
//
// # Writing
//
//	meta := audio.NewWavFileMeta(16, 1, 8000, true, 0)
//	samples := []int16{0, 1, -1, 32767, -32768}
//	err := audioexp.WriteWavFile("out.wav", meta, audio.Adopt(samples, meta.Format()))
//
// An int16 PCMBuffer is written in place. An IntBuffer is copied once and
// rejected if any value does not fit in 16 bits.
//
// # Errors
//
// Every failure is an *Error carrying a Kind:
//
//	_, err := audioexp.ReadWavFile("surround.wav", 0)
//	if errors.Is(err, audioexp.KindUnsupportedChannels) {
//	    ...
//	}
//
// # Logging
//
// Nothing is logged by default. WithLogger takes a *log.Logger that receives
// a record when a file is opened, read, or written.
package audioexp
