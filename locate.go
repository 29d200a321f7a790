package atext

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// locateFrame splits a raw container into its header region and its
// compressed body region.
//
// The header is everything between the BOM and the first null byte; the body
// is everything after that null byte. The body must open with the LZ4 frame
// magic. Scanning for the null separator rather than for the magic itself
// avoids false positives when the magic bytes happen to occur inside the
// header text.
func locateFrame(raw []byte, limits Limits) (header, body []byte, err error) {
	if len(raw) < len(utf8BOM) || !bytes.Equal(raw[:len(utf8BOM)], utf8BOM[:]) {
		return nil, nil, fmt.Errorf("%w: missing UTF-8 BOM at offset 0", ErrCorruptHeader)
	}

	scan := raw[len(utf8BOM):]
	bound := scan
	if uint64(len(bound)) > uint64(limits.MaxHeaderLen) {
		bound = bound[:limits.MaxHeaderLen]
	}
	sep := bytes.IndexByte(bound, 0x00)
	if sep < 0 {
		if len(scan) > len(bound) {
			return nil, nil, fmt.Errorf("%w: no null separator within %d bytes", ErrLimitExceeded, limits.MaxHeaderLen)
		}
		return nil, nil, fmt.Errorf("%w: no null separator found", ErrCorruptHeader)
	}

	header = scan[:sep]
	body = scan[sep+1:]

	if len(body) < len(FrameMagic) {
		return nil, nil, fmt.Errorf("%w: body at offset %d is %d bytes, shorter than frame magic", ErrUnsupportedFrame, len(utf8BOM)+sep+1, len(body))
	}
	if !bytes.Equal(body[:len(FrameMagic)], FrameMagic[:]) {
		return nil, nil, fmt.Errorf("%w: no LZ4 frame magic at offset %d", ErrUnsupportedFrame, len(utf8BOM)+sep+1)
	}
	return header, body, nil
}

// parseHeader parses and validates the header region. Both the identifier
// key "0" and the boolean flag key "1" must be present.
func parseHeader(data []byte) (Header, error) {
	var raw struct {
		ID   *string `json:"0"`
		Flag *bool   `json:"1"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return Header{}, fmt.Errorf("%w: header JSON: %v", ErrCorruptHeader, err)
	}
	// The header object must fill the whole region up to the separator.
	if rest := bytes.TrimSpace(data[dec.InputOffset():]); len(rest) > 0 {
		return Header{}, fmt.Errorf("%w: trailing data after header object", ErrCorruptHeader)
	}
	if raw.ID == nil {
		return Header{}, fmt.Errorf("%w: header missing identifier key \"0\"", ErrCorruptHeader)
	}
	if raw.Flag == nil {
		return Header{}, fmt.Errorf("%w: header missing flag key \"1\"", ErrCorruptHeader)
	}
	return Header{ID: *raw.ID, Flag: *raw.Flag}, nil
}
