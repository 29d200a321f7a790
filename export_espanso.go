package atext

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

type espansoMatch struct {
	Trigger string `yaml:"trigger"`
	Replace string `yaml:"replace"`
}

type espansoFile struct {
	Matches []espansoMatch `yaml:"matches"`
}

// ExportEspanso writes an Espanso-compatible YAML match file.
//
// Only plain-text snippets with at least one trigger are included; each
// trigger becomes its own match entry. Script, rich-text, picture, and HTML
// snippets are silently skipped; their payloads have no meaning to Espanso.
// Snippets with an empty kind are treated as plain text, as the aText
// application omits the kind on its default snippet type.
func ExportEspanso(w io.Writer, snippets []Snippet) error {
	// Espanso rejects "matches: null", so an empty export must still carry
	// an empty sequence.
	out := espansoFile{Matches: []espansoMatch{}}
	total := 0
	for _, s := range snippets {
		if s.Kind != KindText && s.Kind != "" {
			continue
		}
		matched := false
		for _, trigger := range s.Triggers {
			if trigger == "" {
				continue
			}
			out.Matches = append(out.Matches, espansoMatch{Trigger: trigger, Replace: s.Body})
			matched = true
		}
		if matched {
			total++
		}
	}

	_, err := fmt.Fprintf(w, `# aText snippets exported for Espanso
# Generated: %s
# Source snippets: %d (text-only, from %d total)
#
# Install: copy to ~/.config/espanso/match/atext.yml
# Docs:    https://espanso.org/docs/matches/basics/

`, time.Now().Format("2006-01-02 15:04:05"), total, len(snippets))
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
