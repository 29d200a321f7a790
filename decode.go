package atext

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode reads an .atext container from r.
//
// The decoding process:
//  1. Reads the whole container (the format is a bounded application export,
//     not a stream) and verifies the UTF-8 BOM
//  2. Locates the null separator and parses the plaintext JSON header
//  3. Decompresses the LZ4 frame that follows the separator
//  4. Parses the decompressed bytes as the JSON node tree
//  5. Flattens the tree into snippets in document order
//
// Use ReadOption functions to customize behavior:
//   - WithReadLimits(l): set custom size limits (see [Limits])
//
// Decode returns ErrCorruptHeader if the header region is malformed,
// ErrUnsupportedFrame if the body is not an LZ4 frame, ErrDecompressionFailed
// if the frame is truncated or corrupt, ErrInvalidSchema if the decompressed
// JSON does not match the snippet-tree shape, or ErrLimitExceeded if any
// size limit is exceeded. All are fatal for the file being decoded.
func Decode(r io.Reader, opts ...ReadOption) (*Archive, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	raw, err := io.ReadAll(io.LimitReader(r, int64(cfg.limits.MaxContainerLen)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(raw)) > cfg.limits.MaxContainerLen {
		return nil, fmt.Errorf("%w: container larger than %d bytes", ErrLimitExceeded, cfg.limits.MaxContainerLen)
	}

	headerRegion, body, err := locateFrame(raw, cfg.limits)
	if err != nil {
		return nil, err
	}
	header, err := parseHeader(headerRegion)
	if err != nil {
		return nil, err
	}

	plain, err := lz4Decompress(body, cfg.limits.MaxUncompressed)
	if err != nil {
		return nil, err
	}

	roots, err := parseTree(plain)
	if err != nil {
		return nil, err
	}
	snippets, err := flatten(roots, cfg.limits.MaxDepth)
	if err != nil {
		return nil, err
	}

	return &Archive{Header: header, Snippets: snippets}, nil
}

// parseTree parses the decompressed body. The top level must be a JSON
// array whose elements are all objects; node.UnmarshalJSON enforces the
// per-node shape, including the group/snippet union on key "13".
func parseTree(plain []byte) ([]node, error) {
	var roots []node
	if err := json.Unmarshal(plain, &roots); err != nil {
		if errors.Is(err, ErrInvalidSchema) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: top level must be an array of objects: %v", ErrInvalidSchema, err)
	}
	return roots, nil
}
