// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestAdopt_NoCopy(t *testing.T) {
	t.Parallel()

	samples := []int16{1, 2, 3, 4}
	format := &goaudio.Format{NumChannels: 2, SampleRate: 8000}

	buf := Adopt(samples, format)

	if buf.DataType != goaudio.DataTypeI16 {
		t.Errorf("DataType = %v, want DataTypeI16", buf.DataType)
	}
	if len(buf.I16) != len(samples) {
		t.Fatalf("len(I16) = %d, want %d", len(buf.I16), len(samples))
	}
	if &buf.I16[0] != &samples[0] {
		t.Error("Adopt() copied the samples, want the same backing array")
	}
	if buf.Format != format {
		t.Error("Adopt() did not keep the format")
	}
	if buf.SourceBitDepth != 16 {
		t.Errorf("SourceBitDepth = %d, want 16", buf.SourceBitDepth)
	}
}

func TestAdopt_Nil(t *testing.T) {
	t.Parallel()

	buf := Adopt(nil, nil)
	if buf.I16 == nil {
		t.Error("Adopt(nil).I16 = nil, want empty slice")
	}
	if len(buf.I16) != 0 {
		t.Errorf("len(I16) = %d, want 0", len(buf.I16))
	}
}

func TestView_PCMBufferIsBorrowed(t *testing.T) {
	t.Parallel()

	samples := []int16{10, -10, 20}
	got, err := View(Adopt(samples, nil))
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if &got[0] != &samples[0] {
		t.Error("View() copied an int16 PCMBuffer, want a borrowed slice")
	}
}

func TestView_IntBuffer(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{0, 1, -1, math.MaxInt16, math.MinInt16},
	}

	got, err := View(buf)
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}

	want := []int16{0, 1, -1, math.MaxInt16, math.MinInt16}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestView_Errors(t *testing.T) {
	t.Parallel()

	var nilPCM *goaudio.PCMBuffer
	var nilInt *goaudio.IntBuffer

	tests := []struct {
		name string
		buf  goaudio.Buffer
		want error
	}{
		{name: "nil interface", buf: nil, want: ErrNilBuffer},
		{name: "nil PCMBuffer", buf: nilPCM, want: ErrNilBuffer},
		{name: "nil IntBuffer", buf: nilInt, want: ErrNilBuffer},
		{
			name: "float PCMBuffer",
			buf:  &goaudio.PCMBuffer{F32: []float32{0.5}, DataType: goaudio.DataTypeF32},
			want: ErrUnsupportedBuffer,
		},
		{
			name: "float buffer",
			buf:  &goaudio.FloatBuffer{Data: []float64{0.5}},
			want: ErrUnsupportedBuffer,
		},
		{
			name: "int above range",
			buf:  &goaudio.IntBuffer{Data: []int{0, math.MaxInt16 + 1}},
			want: ErrSampleOutOfRange,
		},
		{
			name: "int below range",
			buf:  &goaudio.IntBuffer{Data: []int{math.MinInt16 - 1}},
			want: ErrSampleOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := View(tt.buf)
			if !errors.Is(err, tt.want) {
				t.Errorf("View() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAdopt_ZeroAllocsOnSamples(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	samples := make([]int16, 4096)
	format := &goaudio.Format{NumChannels: 1, SampleRate: 8000}

	// Only the PCMBuffer header itself may be allocated.
	allocs := testing.AllocsPerRun(100, func() {
		_ = Adopt(samples, format)
	})

	if allocs > 1 {
		t.Errorf("Adopt allocated %v times, want at most 1", allocs)
	}
}
