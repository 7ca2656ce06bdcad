// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audioexp/audio"
)

const defaultBufferSize = 4096

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithRegistry sets the sample decoders used by ReadSamples and Samples.
func WithRegistry(reg *Registry) ReaderOption {
	return func(r *Reader) {
		if reg != nil {
			r.reg = reg
		}
	}
}

// WithBufferSize sets the read buffer size in bytes.
func WithBufferSize(n int) ReaderOption {
	return func(r *Reader) {
		if n > 0 {
			r.bufSize = n
		}
	}
}

// Reader decodes the data chunk of a WAV stream into int16 samples.
type Reader struct {
	rs     io.ReadSeeker
	closer io.Closer
	br     *bufio.Reader
	reg    *Registry

	spec      Spec
	dataOff   int64
	dataLen   int64
	frames    uint32
	remaining int // samples left before the end of data

	bufSize int
	buf     []byte
	closed  bool
}

// Open opens the WAV file at path and parses its header. The cursor is left
// on frame 0.
func Open(path string, opts ...ReaderOption) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}

	r, err := NewReader(f, opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f

	return r, nil
}

// NewReader parses the header of the WAV stream rs. Closing the Reader does
// not close rs.
func NewReader(rs io.ReadSeeker, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		rs:      rs,
		reg:     DefaultRegistry(),
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.parseHeader(); err != nil {
		return nil, err
	}

	width := r.spec.SampleSize()
	r.buf = make([]byte, max(r.bufSize/width, 1)*width)
	r.br = bufio.NewReaderSize(rs, r.bufSize)

	if err := r.Seek(0); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Reader) parseHeader() error {
	size, err := r.rs.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	var header [12]byte
	if _, err := io.ReadFull(r.rs, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, size)
		}
		return fmt.Errorf("%w", err)
	}
	if !bytes.Equal(header[0:4], riff.RiffID[:]) || !bytes.Equal(header[8:12], riff.WavFormatID[:]) {
		return ErrNotWavFile
	}
	if _, err := r.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	// go-audio walks the chunk list; it reads straight from rs, so once it
	// stops on the data chunk the stream offset is the first PCM byte.
	dec := gowav.NewDecoder(r.rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
		}
		return fmt.Errorf("%w: %v", ErrUnsupportedWavLayout, err)
	}
	if dec.NumChans == 0 && dec.BitDepth == 0 && dec.SampleRate == 0 {
		return fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedWavLayout)
	}

	r.spec = Spec{
		Format:        Format(dec.WavAudioFormat),
		Channels:      uint16(dec.NumChans),
		SampleRate:    uint32(dec.SampleRate),
		BitsPerSample: uint16(dec.BitDepth),
	}
	if err := r.spec.validate(); err != nil {
		return err
	}

	if err := dec.FwdToPCM(); err != nil || dec.PCMChunk == nil {
		return fmt.Errorf("%w: missing data chunk", ErrUnsupportedWavChunks)
	}

	r.dataOff, err = r.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if r.dataOff < int64(len(header))+8 {
		return fmt.Errorf("%w: data at offset %d", ErrDataSizeMismatch, r.dataOff)
	}

	// go-audio rounds PCMSize up to the RIFF word boundary; the chunk header
	// holds the real byte count and the pad byte may be missing.
	r.dataLen, err = r.declaredDataSize()
	if err != nil {
		return err
	}
	if r.dataOff+r.dataLen > size {
		return fmt.Errorf("%w: %d bytes at offset %d, file is %d bytes",
			ErrDataSizeMismatch, r.dataLen, r.dataOff, size)
	}

	r.frames = uint32(r.dataLen / int64(r.spec.BlockAlign()))

	return nil
}

func (r *Reader) declaredDataSize() (int64, error) {
	var field [4]byte
	if _, err := r.rs.Seek(r.dataOff-4, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	if _, err := io.ReadFull(r.rs, field[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTruncatedHeader, err)
	}

	return int64(binary.LittleEndian.Uint32(field[:])), nil
}

// Spec returns the decoded fmt chunk.
func (r *Reader) Spec() Spec { return r.spec }

// Duration is the number of whole frames in the data chunk.
func (r *Reader) Duration() uint32 { return r.frames }

// Len is the number of samples in the data chunk, Duration*Channels.
func (r *Reader) Len() uint32 { return r.frames * uint32(r.spec.Channels) }

// Meta describes the stream as a WavFileMeta.
func (r *Reader) Meta() audio.WavFileMeta {
	return audio.NewWavFileMeta(r.spec.BitsPerSample, r.spec.Channels, r.spec.SampleRate, r.spec.IsInt(), r.frames)
}

// Seek moves the cursor to the first sample of frame. Seeking to Duration is
// allowed and leaves nothing to read.
func (r *Reader) Seek(frame uint32) error {
	if r.closed {
		return os.ErrClosed
	}
	if frame > r.frames {
		return fmt.Errorf("%w: frame %d of %d", ErrSeekPastEnd, frame, r.frames)
	}

	off := r.dataOff + int64(frame)*int64(r.spec.BlockAlign())
	if _, err := r.rs.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	r.br.Reset(r.rs)
	r.remaining = int(r.frames-frame) * int(r.spec.Channels)

	return nil
}

// ReadSamples decodes up to len(dst) interleaved samples from the cursor.
// It returns io.EOF once the data chunk is exhausted. Streams whose format
// has no registered SampleDecoder fail with ErrOnlyPCM16bitSupported, even
// when nothing is left to read.
func (r *Reader) ReadSamples(dst []int16) (int, error) {
	if r.closed {
		return 0, os.ErrClosed
	}

	decode, ok := r.reg.Get(r.spec.Format, r.spec.BitsPerSample)
	if !ok {
		return 0, fmt.Errorf("%w: stream is %d-bit %s", ErrOnlyPCM16bitSupported, r.spec.BitsPerSample, r.spec.Format)
	}

	if r.remaining == 0 {
		return 0, io.EOF
	}

	n := min(len(dst), r.remaining)
	width := r.spec.SampleSize()
	total := 0

	for total < n {
		k := min(n-total, len(r.buf)/width)
		b := r.buf[:k*width]

		if _, err := io.ReadFull(r.br, b); err != nil {
			// %v keeps io.EOF out of the chain: this is not a clean end.
			return total, fmt.Errorf("%w: %v", ErrTruncatedData, err)
		}

		for i := range k {
			dst[total+i] = decode(b[i*width:])
		}

		total += k
		r.remaining -= k
	}

	return total, nil
}

// Samples yields the samples from the cursor to the end of the data chunk.
// The sequence can be ranged over once; Seek(0) starts it again.
func (r *Reader) Samples() iter.Seq2[int16, error] {
	return func(yield func(int16, error) bool) {
		var one [1]int16
		for {
			n, err := r.ReadSamples(one[:])
			if n == 1 && !yield(one[0], nil) {
				return
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
		}
	}
}

// Close releases the underlying file when the Reader was created by Open.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.closer != nil {
		return r.closer.Close()
	}

	return nil
}
