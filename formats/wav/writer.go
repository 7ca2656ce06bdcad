// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Writer appends int16 samples to a WAV stream and patches the header sizes
// on Finalize.
type Writer struct {
	ws     io.WriteSeeker
	closer io.Closer
	bw     *bufio.Writer
	spec   Spec

	dataSize  int64
	scratch   [2]byte
	finalized bool
	closed    bool
}

// Create truncates or creates the file at path and writes a provisional
// header. spec must describe 16-bit PCM; it is checked before the file is
// touched.
func Create(path string, spec Spec) (*Writer, error) {
	if err := validateWriteSpec(spec); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w, err := NewWriter(f, spec)
	if err != nil {
		f.Close()
		return nil, err
	}
	w.closer = f

	return w, nil
}

// NewWriter writes a provisional header to ws. Finalize does not close ws.
func NewWriter(ws io.WriteSeeker, spec Spec) (*Writer, error) {
	if err := validateWriteSpec(spec); err != nil {
		return nil, err
	}

	if _, err := ws.Write(encodeHeader(spec, 0)); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	return &Writer{
		ws:   ws,
		bw:   bufio.NewWriterSize(ws, 8192),
		spec: spec,
	}, nil
}

// Spec returns the format being written.
func (w *Writer) Spec() Spec { return w.spec }

// WriteSample appends one sample. Framing is up to the caller: a frame is
// Channels consecutive samples.
func (w *Writer) WriteSample(s int16) error {
	if w.closed {
		return ErrWriterClosed
	}
	if w.dataSize+2 > maxDataSize {
		return ErrDataTooLarge
	}

	binary.LittleEndian.PutUint16(w.scratch[:], uint16(s))
	if _, err := w.bw.Write(w.scratch[:]); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	w.dataSize += 2

	return nil
}

// WriteSamples appends samples in order.
func (w *Writer) WriteSamples(samples []int16) error {
	for _, s := range samples {
		if err := w.WriteSample(s); err != nil {
			return err
		}
	}

	return nil
}

// Finalize flushes buffered samples, writes the final RIFF and data sizes and
// closes the file opened by Create. Without it the header keeps zero sizes.
func (w *Writer) Finalize() error {
	if w.closed {
		return ErrWriterClosed
	}

	if err := w.finalize(); err != nil {
		w.Close()
		return err
	}
	w.finalized = true

	return w.Close()
}

func (w *Writer) finalize() error {
	if err := w.bw.Flush(); err != nil {
		return fmt.Errorf("flushing samples: %w", err)
	}

	size := uint32(w.dataSize)
	var field [4]byte

	if _, err := w.ws.Seek(riffSizeOffset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to RIFF size: %w", err)
	}
	binary.LittleEndian.PutUint32(field[:], headerSize-8+size)
	if _, err := w.ws.Write(field[:]); err != nil {
		return fmt.Errorf("patching RIFF size: %w", err)
	}

	if _, err := w.ws.Seek(dataSizeOffset, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to data size: %w", err)
	}
	binary.LittleEndian.PutUint32(field[:], size)
	if _, err := w.ws.Write(field[:]); err != nil {
		return fmt.Errorf("patching data size: %w", err)
	}

	if _, err := w.ws.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seeking to end: %w", err)
	}

	return nil
}

// Close flushes what was written and releases the file opened by Create,
// without patching the header. The partial file stays on disk.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var flushErr error
	if !w.finalized {
		flushErr = w.bw.Flush()
	}

	if w.closer != nil {
		return errors.Join(flushErr, w.closer.Close())
	}

	return flushErr
}

// Finalized reports whether the header sizes were patched.
func (w *Writer) Finalized() bool { return w.finalized }
