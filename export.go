package atext

import "time"

// Exporters render a flattened snippet list to a destination writer. They
// never reorder or mutate the input: output order is the flattener's
// document order, which keeps repeated exports diffable.

// formatTimestamp renders an epoch-seconds timestamp as a UTC
// "YYYY-MM-DD HH:MM:SS" string, or "" for zero and negative values.
func formatTimestamp(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05")
}
