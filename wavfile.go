// SPDX-License-Identifier: EPL-2.0

package audioexp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audioexp/audio"
	"github.com/ik5/audioexp/formats/wav"
)

const (
	opReadMetadata = "read_wav_file_metadata"
	opRead         = "read_wav_file"
	opWrite        = "write_wav_file"
)

// IO runs the WAV operations with a fixed set of options. It holds no open
// files and is safe for concurrent use.
type IO struct {
	logger     *log.Logger
	offsetMode OffsetMode
	registry   *wav.Registry
}

// NewIO returns an IO with the given options applied over the defaults:
// no logging, truncating offsets, 16-bit PCM decoding only.
func NewIO(opts ...Option) *IO {
	o := &IO{
		logger:     discardLogger(),
		offsetMode: OffsetTruncating,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

var std = NewIO()

// ReadWavFileMetadata reads the header of the WAV file at path.
func ReadWavFileMetadata(path string) (audio.WavFileMeta, error) {
	return std.ReadWavFileMetadata(path)
}

// ReadWavFile reads the interleaved samples of a mono or stereo 16-bit PCM
// WAV file, starting startingTimeMS into the file.
func ReadWavFile(path string, startingTimeMS uint32) (*goaudio.PCMBuffer, error) {
	return std.ReadWavFile(path, startingTimeMS)
}

// ReadWavFileNP is ReadWavFile under the name older callers use.
func ReadWavFileNP(path string, startingTimeMS uint32) (*goaudio.PCMBuffer, error) {
	return std.ReadWavFile(path, startingTimeMS)
}

// WriteWavFile writes data as a 16-bit PCM WAV file described by meta.
func WriteWavFile(path string, meta audio.WavFileMeta, data goaudio.Buffer) error {
	return std.WriteWavFile(path, meta, data)
}

func (o *IO) open(op, path string) (*wav.Reader, error) {
	r, err := wav.Open(path, wav.WithRegistry(o.registry))
	if err != nil {
		return nil, newError(openKind(err), op, path, err)
	}
	o.logger.Printf("opened %s: %s", path, r.Meta())

	return r, nil
}

func openKind(err error) Kind {
	if wav.IsHeaderError(err) {
		return KindHeaderParse
	}

	var pe *fs.PathError
	if errors.As(err, &pe) {
		return KindFileOpen
	}

	return KindHeaderParse
}

// ReadWavFileMetadata reads the header of the WAV file at path. Any channel
// count and sample format the header can describe is accepted.
func (o *IO) ReadWavFileMetadata(path string) (audio.WavFileMeta, error) {
	r, err := o.open(opReadMetadata, path)
	if err != nil {
		return audio.WavFileMeta{}, err
	}
	defer r.Close()

	return r.Meta(), nil
}

// ReadWavFile reads the samples of the file at path from the frame matching
// startingTimeMS to the end. The result holds
// (Duration - startingFrame) * Channels interleaved samples, exactly as
// stored. A starting frame equal to Duration gives an empty buffer.
func (o *IO) ReadWavFile(path string, startingTimeMS uint32) (*goaudio.PCMBuffer, error) {
	r, err := o.open(opRead, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	spec := r.Spec()
	if spec.Channels != 1 && spec.Channels != 2 {
		return nil, newError(KindUnsupportedChannels, opRead, path,
			fmt.Errorf("%d channels, want 1 or 2", spec.Channels))
	}

	duration := r.Duration()
	start := o.offsetMode.StartingFrame(startingTimeMS, spec.SampleRate)
	if start > uint64(duration) {
		return nil, newError(KindOffsetPastEnd, opRead, path,
			fmt.Errorf("%d ms is frame %d, file has %d frames", startingTimeMS, start, duration))
	}

	if err := r.Seek(uint32(start)); err != nil {
		return nil, newError(KindDecode, opRead, path, err)
	}

	samples := make([]int16, int(duration-uint32(start))*int(spec.Channels))
	if err := readAll(r, samples); err != nil {
		return nil, newError(KindDecode, opRead, path, err)
	}
	o.logger.Printf("read %d samples from %s starting at frame %d", len(samples), path, start)

	return audio.Adopt(samples, r.Meta().Format()), nil
}

func readAll(r *wav.Reader, dst []int16) error {
	off := 0
	for {
		n, err := r.ReadSamples(dst[off:])
		off += n
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if off == len(dst) {
			break
		}
	}

	if off != len(dst) {
		return fmt.Errorf("%w: got %d of %d samples", wav.ErrTruncatedData, off, len(dst))
	}

	return nil
}

// WriteWavFile creates or truncates the file at path and writes data under
// the format in meta. Only the format fields of meta are used; the sizes
// come from data. data is read in place when it is an int16 PCMBuffer.
//
// A failure after the file was created leaves it on disk with an
// unpatched header; write to a temporary path and rename when that matters.
func (o *IO) WriteWavFile(path string, meta audio.WavFileMeta, data goaudio.Buffer) error {
	samples, err := audio.View(data)
	if err != nil {
		return newError(KindInvalidInput, opWrite, path, err)
	}

	w, err := wav.Create(path, wav.SpecFromMeta(meta))
	if err != nil {
		if errors.Is(err, wav.ErrOnlyPCM16bitSupported) || errors.Is(err, wav.ErrUnsupportedWavLayout) {
			return newError(KindInvalidInput, opWrite, path, err)
		}
		return newError(KindFileOpen, opWrite, path, err)
	}
	defer w.Close()
	o.logger.Printf("created writer for %s: %s", path, meta)

	if err := w.WriteSamples(samples); err != nil {
		return newError(KindWrite, opWrite, path, err)
	}
	if err := w.Finalize(); err != nil {
		return newError(KindWrite, opWrite, path, err)
	}
	o.logger.Printf("wrote %d samples to %s", len(samples), path)

	return nil
}
