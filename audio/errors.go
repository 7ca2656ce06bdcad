// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrNilBuffer         = errors.New("nil sample buffer")
	ErrUnsupportedBuffer = errors.New("sample buffer is not int16 PCM")
	ErrSampleOutOfRange  = errors.New("sample does not fit in 16 bits")
)
