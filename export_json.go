package atext

import (
	"encoding/json"
	"io"
)

// ExportJSON writes the full snippet list as an indented JSON array with
// all fields.
func ExportJSON(w io.Writer, snippets []Snippet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(snippets)
}
