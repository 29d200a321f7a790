// Package atext decodes aText (.atext) container files, the undocumented
// single-file format used by the aText text-expansion application to store
// its snippet database, and flattens their contents into a portable list of
// snippets suitable for export.
//
// # File Format Overview
//
// An .atext file consists of:
//   - A 3-byte UTF-8 BOM
//   - A UTF-8 JSON header object holding a document identifier and a flag
//   - A single 0x00 separator byte
//   - One LZ4 frame (magic 0x04 0x22 0x4D 0x18) spanning the rest of the file
//
// The LZ4 frame decompresses to a JSON array of nodes. Each node is either a
// snippet or a group of child nodes; groups nest to arbitrary depth. Node
// fields are keyed by short numeric strings, and key "13" is overloaded: it
// holds the modification timestamp on a snippet and the child array on a
// group, discriminated by the group marker key "99".
//
// # Basic Usage
//
// To decode a file and export its snippets as CSV:
//
//	f, _ := os.Open("Data.atext")
//	defer f.Close()
//	arc, err := atext.Decode(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = atext.ExportCSV(os.Stdout, arc.Snippets)
//
// # Security Considerations
//
// The package includes built-in protection against oversized allocations,
// decompression bombs, and pathologically deep group nesting via
// configurable [Limits]. All limits are enforced during decoding.
//
// The package is read-only: aText containers are never re-encoded.
package atext
