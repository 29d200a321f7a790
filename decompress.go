package atext

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Decompress inflates a complete LZ4 frame. The frame carries no trusted
// uncompressed-length field, so a LimitReader caps the output at
// maxUncompressed bytes to stop decompression bombs.
func lz4Decompress(frame []byte, maxUncompressed uint64) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(frame))
	b, err := io.ReadAll(io.LimitReader(r, int64(maxUncompressed)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompressionFailed, err)
	}
	if uint64(len(b)) > maxUncompressed {
		return nil, fmt.Errorf("%w: frame expands beyond %d bytes", ErrLimitExceeded, maxUncompressed)
	}
	return b, nil
}
