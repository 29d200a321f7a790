package atext

import "errors"

var (
	ErrCorruptHeader       = errors.New("atext: corrupt header")
	ErrUnsupportedFrame    = errors.New("atext: unsupported frame")
	ErrDecompressionFailed = errors.New("atext: decompression failed")
	ErrInvalidSchema       = errors.New("atext: invalid schema")
	ErrLimitExceeded       = errors.New("atext: limit exceeded")
)
