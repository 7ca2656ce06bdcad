// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"ErrNilBuffer":         {ErrNilBuffer, "nil sample buffer"},
		"ErrUnsupportedBuffer": {ErrUnsupportedBuffer, "sample buffer is not int16 PCM"},
		"ErrSampleOutOfRange":  {ErrSampleOutOfRange, "sample does not fit in 16 bits"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", name)
			}
			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNilBuffer, ErrUnsupportedBuffer, ErrSampleOutOfRange}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: index 3 value 40000", ErrSampleOutOfRange)
	if !errors.Is(wrapped, ErrSampleOutOfRange) {
		t.Error("errors.Is() failed for wrapped ErrSampleOutOfRange")
	}
}
