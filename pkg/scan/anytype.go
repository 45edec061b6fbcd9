package scan

import (
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/pyparse"
)

// ForbiddenMarker is the name of the dynamic type which must not appear in checked code.
// It is matched literally: a user symbol named Any is rejected too,
// and an aliased or attribute access such as typing.Any isn't.
const ForbiddenMarker = "Any"

// ScanAny reports references to Any, either in a type comment
// ("# type: (Any) -> Any") or as a name anywhere in the syntax tree.
// Both sources collapse into a single KindAnyAnnotation finding.
func ScanAny(source []byte) (*Verdict, error) {
	tree, err := pyparse.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	defer tree.Close()
	verdict := &Verdict{}
	for _, comment := range tree.Comments() {
		if strings.HasPrefix(stripSpaces(comment.Text), prefixTypeComment) && strings.Contains(comment.Text, ForbiddenMarker) {
			verdict.Add(&Finding{
				Kind:     KindAnyAnnotation,
				Location: comment.Location,
				Text:     comment.Text,
			})
			return verdict, nil
		}
	}
	tree.Walk(func(node *pyparse.Node) bool {
		if !verdict.OK() {
			return false
		}
		switch node.Kind() {
		case "import_statement", "import_from_statement", "future_import_statement",
			"global_statement", "nonlocal_statement":
			return false
		case "identifier":
			if tree.Text(node) == ForbiddenMarker && isReference(node) {
				verdict.Add(&Finding{
					Kind:     KindAnyAnnotation,
					Location: pyparse.LocationOf(node),
					Text:     ForbiddenMarker,
				})
			}
		}
		return true
	})
	return verdict, nil
}

// isReference reports whether the identifier is a name Python would load or store,
// as opposed to an attribute, a definition name, a parameter or a keyword argument.
func isReference(node *pyparse.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return true
	}
	switch parent.Kind() {
	case "attribute":
		return !sameNode(node, parent.ChildByFieldName("attribute"))
	case "function_definition", "class_definition", "keyword_argument",
		"default_parameter", "typed_default_parameter":
		return !sameNode(node, parent.ChildByFieldName("name"))
	case "parameters", "lambda_parameters", "typed_parameter":
		return false
	case "list_splat_pattern", "dictionary_splat_pattern":
		return !isParameter(parent)
	}
	return true
}

func isParameter(node *pyparse.Node) bool {
	parent := node.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "parameters", "lambda_parameters", "typed_parameter":
		return true
	}
	return false
}

func sameNode(a, b *pyparse.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}
