package pyparse

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Location is a 1-based source position.
type Location struct {
	Line   int
	Column int
}

// ParseError is returned when the source isn't valid Python.
type ParseError struct {
	Message  string
	Location Location
}

func (e *ParseError) Error() string {
	if e.Location.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Location.Line, e.Location.Column)
}

func syntaxError(root *sitter.Node) *ParseError {
	if missing := findFirst(root, (*sitter.Node).IsMissing); missing != nil {
		return &ParseError{
			Message:  "invalid syntax: missing " + missing.Kind(),
			Location: locationForNode(missing),
		}
	}
	errorNode := findFirst(root, (*sitter.Node).IsError)
	if errorNode == nil {
		errorNode = root
	}
	return &ParseError{
		Message:  "invalid syntax",
		Location: locationForNode(errorNode),
	}
}

func findFirst(root *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	var best *sitter.Node
	walkNodes(root, func(node *sitter.Node) bool {
		if match(node) && (best == nil || node.StartByte() < best.StartByte()) {
			best = node
		}
		return true
	})
	return best
}

func locationForNode(node *sitter.Node) Location {
	if node == nil {
		return Location{}
	}
	start := node.StartPosition()
	return Location{
		Line:   int(start.Row) + 1,
		Column: int(start.Column) + 1,
	}
}
