// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files as interleaved int16 samples.
//
// Chunk walking is delegated to github.com/go-audio/wav; sample decoding and
// header writing are done here so that samples are never widened or
// reinterpreted behind the caller's back.
//
// # Reading
//
// Open parses the header and positions the cursor on frame 0:
//
//	r, err := wav.Open("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	defer r.Close()
//
//	fmt.Println(r.Spec().Channels, r.Duration(), r.Len())
//
//	buf := make([]int16, r.Len())
//	n, err := r.ReadSamples(buf)
//
// Samples offers the same data as a single-pass iterator, and Seek moves the
// cursor to any frame up to Duration:
//
//	r.Seek(44100)
//	for s, err := range r.Samples() {
//	    ...
//	}
//
// Any fmt chunk with a PCM or IEEE float tag and a sample width of 8, 16, 24
// or 32 bits can be opened and inspected. Only 16-bit PCM can be decoded by
// default; everything else fails with ErrOnlyPCM16bitSupported. Callers that
// want other widths register their own SampleDecoder:
//
//	reg := wav.DefaultRegistry()
//	reg.Register(wav.FormatPCM, 8, func(b []byte) int16 {
//	    return int16(int8(b[0]-128)) << 8
//	})
//	r, err := wav.Open("audio8.wav", wav.WithRegistry(reg))
//
// # Writing
//
// Create writes a header with placeholder sizes; Finalize patches them:
//
//	w, err := wav.Create("out.wav", wav.Spec{
//	    Format:        wav.FormatPCM,
//	    Channels:      2,
//	    SampleRate:    44100,
//	    BitsPerSample: 16,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer w.Close()
//
//	w.WriteSamples(samples)
//	err = w.Finalize()
//
// A file that is never finalized keeps zero sizes in its header.
// WriteWAV16 writes a whole file in one pass to any io.Writer, and Encode
// returns the bytes of a file built in memory.
//
// # Error Handling
//
// Header problems wrap one of ErrNotWavFile, ErrTruncatedHeader,
// ErrUnsupportedWavLayout, ErrUnsupportedFormatTag, ErrUnsupportedBitDepth,
// ErrUnsupportedWavChunks or ErrDataSizeMismatch; IsHeaderError matches any
// of them. Sample problems wrap ErrOnlyPCM16bitSupported or
// ErrTruncatedData.
//
// # File Format
//
// Written files use the canonical layout:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): format tag, channels, sample rate, byte rate,
//     block align, bits per sample
//   - data chunk: interleaved little-endian samples
package wav
