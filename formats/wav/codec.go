// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"sync"
)

// SampleDecoder turns one stored sample (BitsPerSample/8 little-endian bytes)
// into an int16.
type SampleDecoder func(b []byte) int16

type codecKey struct {
	format Format
	bits   uint16
}

// Registry maps a (format tag, bit depth) pair to the SampleDecoder used to
// produce int16 samples. A Reader fails with ErrOnlyPCM16bitSupported for any
// pair that is not registered.
type Registry struct {
	codecs map[codecKey]SampleDecoder
	mtx    *sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[codecKey]SampleDecoder),
		mtx:    &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry that only knows 16-bit PCM.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(FormatPCM, 16, DecodePCM16)

	return r
}

func (r *Registry) Register(format Format, bits uint16, d SampleDecoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[codecKey{format: format, bits: bits}] = d
}

func (r *Registry) Get(format Format, bits uint16) (SampleDecoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[codecKey{format: format, bits: bits}]

	return d, ok
}

// DecodePCM16 reads a little-endian signed 16-bit sample verbatim.
func DecodePCM16(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b))
}
