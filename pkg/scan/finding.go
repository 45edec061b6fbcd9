// Package scan implements the lexical and syntactic checks run against a Python file
// before it is handed to Pyright and the interpreter.
// Each check returns a Verdict: a set of Findings deduplicated by Kind,
// where an empty Verdict means the check passed.
package scan

import (
	"maps"
	"slices"

	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/pyparse"
)

type Kind int

const (
	KindTypeIgnore Kind = iota + 1
	KindPyrightIgnore
	KindAnyAnnotation
	KindIteration
	KindCheckerError
)

func (k Kind) String() string {
	switch k {
	case KindTypeIgnore:
		return "type-ignore"
	case KindPyrightIgnore:
		return "pyright-ignore"
	case KindAnyAnnotation:
		return "any-annotation"
	case KindIteration:
		return "iteration"
	case KindCheckerError:
		return "checker-error"
	default:
		return "unknown"
	}
}

// Finding is the first occurrence of a Kind in a file.
type Finding struct {
	Kind     Kind
	Location pyparse.Location
	Text     string
}

// Verdict is the outcome of a single check.
type Verdict struct {
	findings map[Kind]*Finding
}

// Add records the finding unless a finding of the same kind is already recorded.
func (v *Verdict) Add(f *Finding) {
	if v.findings == nil {
		v.findings = map[Kind]*Finding{}
	}
	if _, ok := v.findings[f.Kind]; ok {
		return
	}
	v.findings[f.Kind] = f
}

// OK reports whether the check passed.
func (v *Verdict) OK() bool {
	return v == nil || len(v.findings) == 0
}

func (v *Verdict) Has(kind Kind) bool {
	if v == nil {
		return false
	}
	_, ok := v.findings[kind]
	return ok
}

// Kinds returns the recorded kinds in ascending order.
func (v *Verdict) Kinds() []Kind {
	if v == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(v.findings))
}

// Findings returns the recorded findings ordered by kind.
func (v *Verdict) Findings() []*Finding {
	kinds := v.Kinds()
	findings := make([]*Finding, 0, len(kinds))
	for _, kind := range kinds {
		findings = append(findings, v.findings[kind])
	}
	return findings
}
