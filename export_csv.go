package atext

import (
	"encoding/csv"
	"io"
	"strings"
)

// csvColumns is the fixed column order of the CSV export.
var csvColumns = []string{
	"trigger", "content", "type", "type_label", "group", "name",
	"hotkey", "tags", "created", "modified", "rich_content", "uuid",
}

// ExportCSV writes one row per snippet. The output starts with a UTF-8 BOM
// so spreadsheet tools detect the encoding instead of mangling non-ASCII
// content.
func ExportCSV(w io.Writer, snippets []Snippet) error {
	if _, err := w.Write(utf8BOM[:]); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return err
	}
	for _, s := range snippets {
		row := []string{
			s.Trigger(),
			s.Body,
			string(s.Kind),
			s.Kind.Label(),
			s.GroupPath(),
			s.Label,
			s.Hotkey,
			strings.Join(s.Tags, ", "),
			formatTimestamp(s.CreatedAt),
			formatTimestamp(s.ModifiedAt),
			s.RichBody,
			s.ID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
