package atext

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const txtContentLimit = 300

// ExportTXT writes a human-readable summary, snippets grouped by their
// group path in traversal order.
func ExportTXT(w io.Writer, snippets []Snippet) error {
	groupOrder := make([]string, 0)
	grouped := make(map[string][]Snippet)
	for _, s := range snippets {
		key := s.GroupPath()
		if key == "" {
			key = "(ungrouped)"
		}
		if _, seen := grouped[key]; !seen {
			groupOrder = append(groupOrder, key)
		}
		grouped[key] = append(grouped[key], s)
	}

	var b strings.Builder
	b.WriteString("aText Snippets Export\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total: %d snippets in %d groups\n", len(snippets), len(groupOrder))
	b.WriteString(strings.Repeat("=", 72) + "\n")

	for _, key := range groupOrder {
		items := grouped[key]
		b.WriteString("\n" + strings.Repeat("-", 72) + "\n")
		fmt.Fprintf(&b, "  GROUP: %s (%d snippets)\n", key, len(items))
		b.WriteString(strings.Repeat("-", 72) + "\n\n")

		for _, s := range items {
			fmt.Fprintf(&b, "  Trigger:  %s\n", s.Trigger())
			if s.Label != "" {
				fmt.Fprintf(&b, "  Name:     %s\n", s.Label)
			}
			if s.Hotkey != "" {
				fmt.Fprintf(&b, "  Hotkey:   %s\n", s.Hotkey)
			}
			if s.Kind != "" {
				fmt.Fprintf(&b, "  Type:     %s\n", s.Kind.Label())
			}

			content := s.Body
			if len(content) > txtContentLimit {
				content = content[:txtContentLimit] + "..."
			}
			lines := strings.Split(content, "\n")
			fmt.Fprintf(&b, "  Content:  %s\n", lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "            %s\n", line)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
