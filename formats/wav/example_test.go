// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audioexp/formats/wav"
)

// Example_decoding demonstrates reading a WAV stream.
func Example_decoding() {
	spec := wav.Spec{Format: wav.FormatPCM, Channels: 1, SampleRate: 16000, BitsPerSample: 16}
	wavData, err := wav.Encode(spec, []int16{100, 200, 300, 400, 500})
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	r, err := wav.NewReader(bytes.NewReader(wavData))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", r.Spec().SampleRate)
	fmt.Printf("Channels: %d\n", r.Spec().Channels)

	buf := make([]int16, 10)
	n, err := r.ReadSamples(buf)
	if err != nil && err != io.EOF {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Read %d samples: %v\n", n, buf[:n])
	// Output:
	// Sample rate: 16000 Hz
	// Channels: 1
	// Read 5 samples: [100 200 300 400 500]
}

// Example_writer writes a file sample by sample and patches the header.
func Example_writer() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	spec := wav.Spec{Format: wav.FormatPCM, Channels: 2, SampleRate: 8000, BitsPerSample: 16}

	w, err := wav.Create(path, spec)
	if err != nil {
		fmt.Printf("Create error: %v\n", err)
		return
	}
	for i := range 8000 {
		s := int16((i % 100) * 100)
		w.WriteSample(s)  // left
		w.WriteSample(-s) // right
	}
	if err := w.Finalize(); err != nil {
		fmt.Printf("Finalize error: %v\n", err)
		return
	}

	r, err := wav.Open(path)
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}
	defer r.Close()

	fmt.Println(r.Meta())
	fmt.Printf("Frames: %d, samples: %d\n", r.Duration(), r.Len())
	// Output:
	// WavFileMeta(bits_per_sample=16, channels=2, sample_rate=8000, sample_format_int=true)
	// Frames: 8000, samples: 16000
}

// Example_encoding demonstrates writing a WAV in one pass.
func Example_encoding() {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16((i % 100) * 100)
	}

	spec := wav.Spec{Format: wav.FormatPCM, Channels: 1, SampleRate: 8000, BitsPerSample: 16}

	// Write to buffer (in real code, use Create)
	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, spec, samples); err != nil {
		fmt.Printf("Write error: %v\n", err)
		return
	}

	fmt.Printf("Wrote %d bytes\n", output.Len())
	fmt.Printf("Header: 44 bytes\n")
	fmt.Printf("Data: %d bytes (%d samples x 2 bytes)\n", len(samples)*2, len(samples))
	// Output:
	// Wrote 2044 bytes
	// Header: 44 bytes
	// Data: 2000 bytes (1000 samples x 2 bytes)
}

// Example_errorNotWAV shows handling of invalid WAV data.
func Example_errorNotWAV() {
	_, err := wav.NewReader(bytes.NewReader([]byte("This is not a WAV file")))

	switch {
	case errors.Is(err, wav.ErrNotWavFile):
		fmt.Println("Detected: Not a valid WAV file")
	case err != nil:
		fmt.Printf("Other error: %v\n", err)
	}
	// Output: Detected: Not a valid WAV file
}

// Example_seek starts reading half a second in.
func Example_seek() {
	spec := wav.Spec{Format: wav.FormatPCM, Channels: 1, SampleRate: 10, BitsPerSample: 16}
	wavData, _ := wav.Encode(spec, []int16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	r, _ := wav.NewReader(bytes.NewReader(wavData))
	if err := r.Seek(5); err != nil {
		fmt.Printf("Seek error: %v\n", err)
		return
	}

	var rest []int16
	for s, err := range r.Samples() {
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			return
		}
		rest = append(rest, s)
	}

	fmt.Println(rest)
	// Output: [5 6 7 8 9]
}

// Example_streamingRead demonstrates reading a WAV stream in chunks.
func Example_streamingRead() {
	spec := wav.Spec{Format: wav.FormatPCM, Channels: 1, SampleRate: 8000, BitsPerSample: 16}
	wavData, _ := wav.Encode(spec, make([]int16, 10000))

	r, _ := wav.NewReader(bytes.NewReader(wavData))

	buf := make([]int16, 1000) // Read 1000 samples at a time
	chunks := 0
	totalSamples := 0

	for {
		n, err := r.ReadSamples(buf)
		if n > 0 {
			chunks++
			totalSamples += n
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			break
		}
	}

	fmt.Printf("Read %d samples in %d chunks\n", totalSamples, chunks)
	// Output:
	// Read 10000 samples in 10 chunks
}

// Example_widening opts into 8-bit PCM by registering a decoder.
func Example_widening() {
	reg := wav.DefaultRegistry()
	reg.Register(wav.FormatPCM, 8, func(b []byte) int16 {
		return int16(int8(b[0]-128)) << 8
	})

	// A tiny 8-bit mono file: three samples.
	data := []byte{0x80, 0xC0, 0x40}
	raw := new(bytes.Buffer)
	raw.WriteString("RIFF")
	raw.Write([]byte{byte(36 + len(data) + 1), 0, 0, 0})
	raw.WriteString("WAVEfmt ")
	raw.Write([]byte{16, 0, 0, 0, 1, 0, 1, 0, 0x40, 0x1F, 0, 0, 0x40, 0x1F, 0, 0, 1, 0, 8, 0})
	raw.WriteString("data")
	raw.Write([]byte{byte(len(data)), 0, 0, 0})
	raw.Write(data)
	raw.WriteByte(0) // pad

	r, err := wav.NewReader(bytes.NewReader(raw.Bytes()), wav.WithRegistry(reg))
	if err != nil {
		fmt.Printf("Open error: %v\n", err)
		return
	}

	buf := make([]int16, 3)
	n, _ := r.ReadSamples(buf)
	fmt.Println(r.Spec().BitsPerSample, buf[:n])
	// Output: 8 [0 16384 -16384]
}
