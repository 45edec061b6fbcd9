// Package pyparse tokenizes and parses Python source with the tree-sitter Python grammar.
// It exposes only what the scanners need: a depth-first walk over syntax nodes,
// the comment tokens of a file, and positioned syntax errors.
package pyparse

import (
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Node is a node of the Python syntax tree.
type Node = sitter.Node

// Tree is a parsed Python source unit.
type Tree struct {
	tree   *sitter.Tree
	source []byte
}

// Comment is a single comment token.
type Comment struct {
	Text     string
	Location Location
}

// Parse parses Python source.
// A source with ERROR or MISSING nodes is rejected with *ParseError.
func Parse(source []byte) (*Tree, error) {
	p := sitter.NewParser()
	defer p.Close()
	if err := p.SetLanguage(sitter.NewLanguage(python.Language())); err != nil {
		return nil, fmt.Errorf("load the Python grammar: %w", err)
	}
	tree := p.Parse(source, nil)
	if tree == nil {
		return nil, errors.New("parse Python source: parser returned no tree")
	}
	t := &Tree{tree: tree, source: source}
	root := tree.RootNode()
	if root.HasError() {
		defer tree.Close()
		return nil, syntaxError(root)
	}
	return t, nil
}

// Close releases the tree.
func (t *Tree) Close() {
	if t == nil || t.tree == nil {
		return
	}
	t.tree.Close()
}

// Root returns the module node.
func (t *Tree) Root() *Node {
	return t.tree.RootNode()
}

// Text returns the source text of the node.
func (t *Tree) Text(node *Node) string {
	if node == nil {
		return ""
	}
	start := int(node.StartByte())
	end := int(node.EndByte())
	if start < 0 || end < start || end > len(t.source) {
		return ""
	}
	return string(t.source[start:end])
}

// Walk visits every node depth-first starting from the root.
// If visit returns false, the children of the node aren't visited.
func (t *Tree) Walk(visit func(node *Node) bool) {
	walkNodes(t.Root(), visit)
}

// Comments returns comment tokens in source order.
func (t *Tree) Comments() []*Comment {
	comments := []*Comment{}
	t.Walk(func(node *Node) bool {
		if node.Kind() == "comment" {
			comments = append(comments, &Comment{
				Text:     t.Text(node),
				Location: locationForNode(node),
			})
		}
		return true
	})
	return comments
}

// LocationOf returns the 1-based start position of the node.
func LocationOf(node *Node) Location {
	return locationForNode(node)
}

func walkNodes(node *Node, visit func(node *Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkNodes(node.Child(i), visit)
	}
}
