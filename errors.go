// SPDX-License-Identifier: EPL-2.0

package audioexp

import (
	"errors"
	"fmt"
)

// Kind classifies the failures of the public operations.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindFileOpen: the path cannot be opened for reading or created for
	// writing.
	KindFileOpen
	// KindHeaderParse: the RIFF/WAVE header is invalid or unsupported.
	KindHeaderParse
	// KindDecode: the samples cannot be produced as int16.
	KindDecode
	// KindOffsetPastEnd: the starting frame is after the last frame.
	KindOffsetPastEnd
	// KindUnsupportedChannels: only mono and stereo samples can be read.
	KindUnsupportedChannels
	// KindWrite: appending samples or patching the header failed.
	KindWrite
	// KindInvalidInput: the metadata or sample buffer handed to a write is
	// unusable.
	KindInvalidInput
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindFileOpen:            "file open",
	KindHeaderParse:         "header parse",
	KindDecode:              "decode",
	KindOffsetPastEnd:       "offset past end",
	KindUnsupportedChannels: "unsupported channel count",
	KindWrite:               "write",
	KindInvalidInput:        "invalid input",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error lets Kind values act as errors.Is targets:
//
//	errors.Is(err, audioexp.KindOffsetPastEnd)
func (k Kind) Error() string { return k.String() }

// Error is returned by every public operation.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	}

	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a Kind target against e.Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}
