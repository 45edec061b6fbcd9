package scan

import (
	"fmt"

	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/pyparse"
)

// ScanIteration reports for and while statements anywhere in the file, including
// "async for". Comprehensions are allowed.
// If forbid is false the check is skipped and an empty Verdict is returned.
func ScanIteration(source []byte, forbid bool) (*Verdict, error) {
	verdict := &Verdict{}
	if !forbid {
		return verdict, nil
	}
	tree, err := pyparse.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	defer tree.Close()
	tree.Walk(func(node *pyparse.Node) bool {
		if !verdict.OK() {
			return false
		}
		switch node.Kind() {
		case "for_statement", "while_statement":
			verdict.Add(&Finding{
				Kind:     KindIteration,
				Location: pyparse.LocationOf(node),
				Text:     node.Kind(),
			})
			return false
		}
		return true
	})
	return verdict, nil
}
