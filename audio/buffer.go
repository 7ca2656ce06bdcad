// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Adopt wraps samples in a rank-1 int16 PCM buffer. The buffer takes
// ownership of the slice: no element is copied and the caller must not keep
// using samples after the call.
func Adopt(samples []int16, format *goaudio.Format) *goaudio.PCMBuffer {
	if samples == nil {
		samples = []int16{}
	}

	return &goaudio.PCMBuffer{
		Format:         format,
		I16:            samples,
		DataType:       goaudio.DataTypeI16,
		SourceBitDepth: 16,
	}
}

// View exposes the int16 samples held by buf, in storage order.
//
// An int16 PCMBuffer is borrowed as is: the returned slice aliases its
// storage and is only valid while buf is not modified. An IntBuffer is copied
// once, and every value must fit in 16 bits; nothing is truncated.
func View(buf goaudio.Buffer) ([]int16, error) {
	switch b := buf.(type) {
	case nil:
		return nil, ErrNilBuffer
	case *goaudio.PCMBuffer:
		if b == nil {
			return nil, ErrNilBuffer
		}
		if b.DataType != goaudio.DataTypeI16 {
			return nil, fmt.Errorf("%w: pcm data type %v", ErrUnsupportedBuffer, b.DataType)
		}

		return b.I16, nil
	case *goaudio.IntBuffer:
		if b == nil {
			return nil, ErrNilBuffer
		}

		return intsToInt16(b.Data)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBuffer, buf)
	}
}

func intsToInt16(data []int) ([]int16, error) {
	out := make([]int16, len(data))
	for i, v := range data {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, fmt.Errorf("%w: index %d value %d", ErrSampleOutOfRange, i, v)
		}
		out[i] = int16(v)
	}

	return out, nil
}
