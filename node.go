package atext

import (
	"encoding/json"
	"errors"
	"fmt"
)

// node is one raw entry of the decompressed snippet tree, keyed by the
// format's short numeric field names. Key "13" is overloaded: it holds the
// modification timestamp on a snippet and the child array on a group. The
// two readings are kept mutually exclusive here as a union discriminated by
// the group marker key "99", never by inspecting the runtime type of "13".
type node struct {
	id       string
	triggers []string
	label    string
	kind     Kind
	body     string
	richBody string
	hotkey   string
	tags     []string
	created  int64

	isGroup     bool
	children    []node // groups only
	modified    int64  // snippets only
	hasModified bool
}

func (n *node) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: node is not a JSON object: %v", ErrInvalidSchema, err)
	}

	var err error
	if n.id, err = rawString(raw, "0"); err != nil {
		return err
	}
	if n.triggers, err = rawStringList(raw, "1"); err != nil {
		return err
	}
	if n.label, err = rawString(raw, "2"); err != nil {
		return err
	}
	var kind string
	if kind, err = rawString(raw, "3"); err != nil {
		return err
	}
	n.kind = Kind(kind)
	if n.body, err = rawString(raw, "4"); err != nil {
		return err
	}
	if n.richBody, err = rawString(raw, "5"); err != nil {
		return err
	}
	if n.hotkey, err = rawString(raw, "8"); err != nil {
		return err
	}
	if n.tags, err = rawStringList(raw, "10"); err != nil {
		return err
	}
	if n.created, _, err = rawInt(raw, "12"); err != nil {
		return err
	}

	marker, _, err := rawInt(raw, "99")
	if err != nil {
		return err
	}
	n.isGroup = marker == 1

	// json.Unmarshal leaves the target untouched on JSON null, so null would
	// slip past both checks below. A null child array is malformed; a null
	// timestamp is treated as absent.
	overloaded, present := raw["13"]
	if present && string(overloaded) == "null" {
		if n.isGroup {
			return fmt.Errorf("%w: group node %q key \"13\" is null, not a child array", ErrInvalidSchema, n.label)
		}
		present = false
	}
	if n.isGroup {
		if !present {
			return fmt.Errorf("%w: group node %q has no child array", ErrInvalidSchema, n.label)
		}
		if err := json.Unmarshal(overloaded, &n.children); err != nil {
			if errors.Is(err, ErrInvalidSchema) {
				return err
			}
			return fmt.Errorf("%w: group node %q key \"13\" is not a child array: %v", ErrInvalidSchema, n.label, err)
		}
		return nil
	}
	if present {
		if err := json.Unmarshal(overloaded, &n.modified); err != nil {
			return fmt.Errorf("%w: snippet node %q key \"13\" is not an integer: %v", ErrInvalidSchema, n.label, err)
		}
		n.hasModified = true
	}
	return nil
}

// snippet converts a non-group node into its output form. path is copied,
// so later traversal cannot mutate an already-emitted snippet.
//
// Timestamp defaulting: a snippet without a modification time inherits its
// creation time; with neither, both stay zero.
func (n *node) snippet(path []string) Snippet {
	s := Snippet{
		ID:         n.id,
		Triggers:   n.triggers,
		Label:      n.label,
		Kind:       n.kind,
		Body:       n.body,
		RichBody:   n.richBody,
		Hotkey:     n.hotkey,
		Tags:       n.tags,
		CreatedAt:  n.created,
		ModifiedAt: n.modified,
		Group:      append([]string(nil), path...),
	}
	if s.Triggers == nil {
		s.Triggers = []string{}
	}
	if !n.hasModified {
		s.ModifiedAt = n.created
	}
	return s
}

func rawString(raw map[string]json.RawMessage, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("%w: node key %q is not a string", ErrInvalidSchema, key)
	}
	return s, nil
}

func rawInt(raw map[string]json.RawMessage, key string) (int64, bool, error) {
	v, ok := raw[key]
	if !ok {
		return 0, false, nil
	}
	var i int64
	if err := json.Unmarshal(v, &i); err != nil {
		return 0, false, fmt.Errorf("%w: node key %q is not an integer", ErrInvalidSchema, key)
	}
	return i, true, nil
}

// rawStringList reads an ordered string list. Older aText files store a
// single bare string for one-element lists; that form is normalized here.
func rawStringList(raw map[string]json.RawMessage, key string) ([]string, error) {
	v, ok := raw[key]
	if !ok {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return []string{s}, nil
	}
	return nil, fmt.Errorf("%w: node key %q is neither a string list nor a string", ErrInvalidSchema, key)
}
