// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a complete 16-bit PCM WAV with interleaved samples in one
// pass. Unlike Writer it needs no seeking, since the sizes are known up
// front.
func WriteWAV16(w io.Writer, spec Spec, samples []int16) error {
	if err := validateWriteSpec(spec); err != nil {
		return err
	}
	if int64(len(samples))*2 > maxDataSize {
		return ErrDataTooLarge
	}

	if _, err := w.Write(encodeHeader(spec, uint32(len(samples)*2))); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	// Write 8K samples at a time
	const chunkSize = 8192
	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
