// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/orcaman/writerseeker"
)

// Encode returns the bytes of a 16-bit PCM WAV holding samples, built with
// the same Writer that Create uses.
func Encode(spec Spec, samples []int16) ([]byte, error) {
	ws := &writerseeker.WriterSeeker{}

	w, err := NewWriter(ws, spec)
	if err != nil {
		return nil, err
	}
	if err := w.WriteSamples(samples); err != nil {
		return nil, err
	}
	if err := w.Finalize(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(ws.Reader())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return data, nil
}
