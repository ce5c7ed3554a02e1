package tree

import (
	"encoding/json"
	"sort"
	"strings"

	"repo-radar/types"
)

// Node is one directory of a nested repository tree. Children are keyed by
// path segment: a directory child is a non-nil *Node, a file child is nil.
// That convention makes the JSON form match the shape fed to the AI prompts,
// {"dir": {...}, "file": null}.
type Node struct {
	children map[string]*Node
}

// NewNode returns an empty directory node.
func NewNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// Build converts a flat recursive listing into a nested tree. Intermediate
// path segments are materialized as directories even when the listing has no
// explicit entry for them, and a name already known as a directory is never
// downgraded to a file leaf. The result does not depend on entry order.
func Build(entries []types.TreeEntry) *Node {
	root := NewNode()
	for _, entry := range entries {
		parts := strings.Split(strings.Trim(entry.Path, "/"), "/")
		if len(parts) == 1 && parts[0] == "" {
			continue
		}
		node := root
		for _, part := range parts[:len(parts)-1] {
			node = node.dir(part)
		}
		leaf := parts[len(parts)-1]
		if entry.Kind == types.Directory {
			node.dir(leaf)
			continue
		}
		if _, exists := node.children[leaf]; !exists {
			node.children[leaf] = nil
		}
	}
	return root
}

// dir returns the directory child with the given name, creating it if absent
// and promoting a same-named file leaf if one is already there.
func (n *Node) dir(name string) *Node {
	if child := n.children[name]; child != nil {
		return child
	}
	child := NewNode()
	n.children[name] = child
	return child
}

// Render produces the human-readable form of the tree: a synthetic "Root"
// line followed by one line per descendant. At every level directories come
// before files, each group sorted ascending by name, and directory names
// carry a trailing slash.
func (n *Node) Render() string {
	var b strings.Builder
	b.WriteString("Root\n")
	n.render(&b, nil)
	return b.String()
}

// render walks depth-first. ancestorsLast holds, for every ancestor level,
// whether that ancestor was the last of its siblings; it decides between a
// continuation column and a blank one.
func (n *Node) render(b *strings.Builder, ancestorsLast []bool) {
	names := n.sortedNames()
	for i, name := range names {
		last := i == len(names)-1
		for _, ancestorLast := range ancestorsLast {
			if ancestorLast {
				b.WriteString("    ")
			} else {
				b.WriteString("│   ")
			}
		}
		if last {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
		b.WriteString(name)
		if child := n.children[name]; child != nil {
			b.WriteString("/\n")
			child.render(b, append(ancestorsLast, last))
		} else {
			b.WriteString("\n")
		}
	}
}

// sortedNames lists directory children first, then file children, each group
// in ascending name order. This ordering is part of the rendering contract.
func (n *Node) sortedNames() []string {
	dirs := make([]string, 0, len(n.children))
	files := make([]string, 0, len(n.children))
	for name, child := range n.children {
		if child != nil {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	return append(dirs, files...)
}

// Len returns the number of immediate children.
func (n *Node) Len() int {
	return len(n.children)
}

// MarshalJSON serializes the nested structure; file leaves become null.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.children)
}
