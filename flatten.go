package atext

import "fmt"

// flatten walks the node tree depth-first in pre-order (siblings in array
// order) and emits one Snippet per non-group node. Group nodes contribute
// their label to the path of everything beneath them and are never emitted
// themselves.
//
// The traversal uses an explicit stack rather than recursion: nesting depth
// is untrusted input, bounded only by maxDepth.
//
// Output order equals document order. Downstream exporters rely on this:
// the text export groups by folder in traversal order, and the tabular
// exports stay diffable across runs.
func flatten(roots []node, maxDepth int) ([]Snippet, error) {
	type item struct {
		n    *node
		path []string
	}
	stack := make([]item, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, item{n: &roots[i]})
	}

	snippets := make([]Snippet, 0, len(roots))
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !it.n.isGroup {
			snippets = append(snippets, it.n.snippet(it.path))
			continue
		}

		if len(it.path)+1 > maxDepth {
			return nil, fmt.Errorf("%w: group nesting deeper than %d", ErrLimitExceeded, maxDepth)
		}
		label := it.n.label
		if label == "" {
			label = unnamedGroupLabel
		}
		childPath := make([]string, 0, len(it.path)+1)
		childPath = append(childPath, it.path...)
		childPath = append(childPath, label)
		for i := len(it.n.children) - 1; i >= 0; i-- {
			stack = append(stack, item{n: &it.n.children[i], path: childPath})
		}
	}
	return snippets, nil
}
