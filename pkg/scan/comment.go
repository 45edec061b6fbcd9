package scan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/pyparse"
)

const (
	prefixTypeIgnore    = "#type:ignore"
	prefixPyrightIgnore = "#pyright:ignore"
	prefixTypeComment   = "#type:"
)

// ScanComments reports comments which disable Pyright diagnostics,
// such as "# type: ignore" and "# pyright: ignore[reportAny]".
func ScanComments(source []byte) (*Verdict, error) {
	tree, err := pyparse.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("tokenize source: %w", err)
	}
	defer tree.Close()
	verdict := &Verdict{}
	for _, comment := range tree.Comments() {
		kind, ok := classifyComment(comment.Text)
		if !ok {
			continue
		}
		verdict.Add(&Finding{
			Kind:     kind,
			Location: comment.Location,
			Text:     comment.Text,
		})
	}
	return verdict, nil
}

func classifyComment(text string) (Kind, bool) {
	trimmed := stripSpaces(text)
	switch {
	case strings.HasPrefix(trimmed, prefixTypeIgnore):
		return KindTypeIgnore, true
	case strings.HasPrefix(trimmed, prefixPyrightIgnore):
		return KindPyrightIgnore, true
	default:
		return 0, false
	}
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
