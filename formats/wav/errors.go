// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrTruncatedHeader       = errors.New("truncated WAV header")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrUnsupportedFormatTag  = errors.New("unsupported WAV format tag")
	ErrUnsupportedBitDepth   = errors.New("unsupported bit depth")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
	ErrDataSizeMismatch      = errors.New("data chunk size exceeds file length")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrTruncatedData         = errors.New("truncated WAV data")
	ErrSeekPastEnd           = errors.New("seek past end of data")
	ErrDataTooLarge          = errors.New("data too large for a RIFF file")
	ErrWriterClosed          = errors.New("WAV writer already closed")
	ErrIsDirectory           = errors.New("is a directory")
)

// IsHeaderError reports whether err was caused by an invalid or unsupported
// RIFF/WAVE header.
func IsHeaderError(err error) bool {
	for _, target := range []error{
		ErrNotWavFile,
		ErrTruncatedHeader,
		ErrUnsupportedWavLayout,
		ErrUnsupportedFormatTag,
		ErrUnsupportedBitDepth,
		ErrUnsupportedWavChunks,
		ErrDataSizeMismatch,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
