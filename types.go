package atext

import "strings"

// utf8BOM is the 3-byte encoding marker every .atext file starts with.
var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// FrameMagic is the 4-byte LZ4 frame signature that must open the
// compressed body region.
var FrameMagic = [4]byte{0x04, 0x22, 0x4D, 0x18}

// Kind identifies the content type of a snippet, using the single-letter
// codes the aText format stores under node key "3".
type Kind string

const (
	KindText     Kind = "t"
	KindScript   Kind = "s"
	KindRichText Kind = "r"
	KindPicture  Kind = "p"
	KindHTML     Kind = "h"
)

var kindLabels = map[Kind]string{
	KindText:     "text",
	KindScript:   "script",
	KindRichText: "rich text",
	KindPicture:  "picture",
	KindHTML:     "HTML",
}

// Label returns a human-readable name for the kind. Unknown codes are
// returned unchanged so nothing is lost on forward-incompatible files.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Header is the plaintext JSON object preceding the compressed body.
//
// The meaning of Flag is unknown; it is validated as a boolean and carried
// through uninterpreted.
type Header struct {
	ID   string `json:"0"`
	Flag bool   `json:"1"`
}

// groupPathSeparator joins group labels in Snippet.GroupPath.
const groupPathSeparator = "/"

// unnamedGroupLabel substitutes for groups stored without a label.
const unnamedGroupLabel = "Unnamed Group"

// Snippet is one flattened, normalized leaf entry of the snippet tree.
// Snippets are immutable value objects: exporters read them and nothing
// writes them after flattening.
type Snippet struct {
	ID         string   `json:"id"`
	Triggers   []string `json:"triggers"`
	Label      string   `json:"label"`
	Kind       Kind     `json:"kind"`
	Body       string   `json:"body"`
	RichBody   string   `json:"rich_body,omitempty"`
	Hotkey     string   `json:"hotkey,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  int64    `json:"created_at"`
	ModifiedAt int64    `json:"modified_at"`

	// Group holds the labels of the enclosing groups, root to leaf.
	Group []string `json:"group"`
}

// GroupPath returns the enclosing group labels joined root-to-leaf with "/".
func (s Snippet) GroupPath() string {
	return strings.Join(s.Group, groupPathSeparator)
}

// Trigger returns the snippet's triggers joined with ", ", the form used by
// the tabular exports.
func (s Snippet) Trigger() string {
	return strings.Join(s.Triggers, ", ")
}

// Archive is a fully decoded .atext file: its header plus the snippet tree
// flattened in document order.
type Archive struct {
	Header   Header
	Snippets []Snippet
}
