package run

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/checker"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/pyparse"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/scan"
)

type fakeChecker struct {
	fail  bool
	err   error
	calls []string
}

func (c *fakeChecker) Check(_ context.Context, _ *logrus.Entry, path, checkerPath string) (*checker.Result, error) {
	c.calls = append(c.calls, checkerPath+" "+path)
	if c.err != nil {
		return nil, c.err
	}
	verdict := &scan.Verdict{}
	if c.fail {
		verdict.Add(&scan.Finding{Kind: scan.KindCheckerError})
	}
	return &checker.Result{Verdict: verdict}, nil
}

type fakeExecutor struct {
	err   error
	calls [][]string
}

func (e *fakeExecutor) Run(_ context.Context, _ *logrus.Entry, name string, args ...string) error {
	e.calls = append(e.calls, append([]string{name}, args...))
	return e.err
}

const (
	srcGood = `def fib(n: int) -> int:
    if n <= 1:
        return n

    return fib(n - 2) + fib(n - 1)


print(fib(10))
`
	srcTypeIgnore = `def fib(n: int) -> int:
    return n  # type: ignore
`
	srcAny = `from typing import Any


def fib(n: Any) -> Any:
    return n
`
	srcWhile = `n: int = 3
while n > 0:
    n -= 1
`
)

func TestController_Run(t *testing.T) { //nolint:funlen,maintidx
	t.Parallel()
	data := []struct {
		name            string
		source          string
		forbidIteration bool
		checkerFail     bool
		checkerErr      error
		executorErr     error
		isErr           bool
		errIs           error
		expMessage      string
		expCheckerCalls []string
		expExecCalls    [][]string
	}{
		{
			name:            "good",
			source:          srcGood,
			expCheckerCalls: []string{"pyright main.py"},
			expExecCalls:    [][]string{{"python3", "main.py"}},
		},
		{
			name:       "type ignore aborts before the checker",
			source:     srcTypeIgnore,
			isErr:      true,
			errIs:      ErrCheckFailed,
			expMessage: MessageDisablingComment,
		},
		{
			name:            "checker error",
			source:          "def fib(n):\n    return n\n",
			checkerFail:     true,
			isErr:           true,
			errIs:           ErrCheckFailed,
			expMessage:      MessageTypeError,
			expCheckerCalls: []string{"pyright main.py"},
		},
		{
			name:            "any annotation",
			source:          srcAny,
			isErr:           true,
			errIs:           ErrCheckFailed,
			expMessage:      MessageAny,
			expCheckerCalls: []string{"pyright main.py"},
		},
		{
			name:            "while with iteration forbidden",
			source:          srcWhile,
			forbidIteration: true,
			isErr:           true,
			errIs:           ErrCheckFailed,
			expMessage:      MessageIteration,
			expCheckerCalls: []string{"pyright main.py"},
		},
		{
			name:            "while with iteration allowed",
			source:          srcWhile,
			expCheckerCalls: []string{"pyright main.py"},
			expExecCalls:    [][]string{{"python3", "main.py"}},
		},
		{
			name:            "checker can't be run",
			source:          srcGood,
			checkerErr:      errors.New(`exec: "pyright": executable file not found in $PATH`),
			isErr:           true,
			expCheckerCalls: []string{"pyright main.py"},
		},
		{
			name:            "interpreter exits with non-zero",
			source:          srcGood,
			executorErr:     errors.New("exit status 2"),
			isErr:           true,
			expCheckerCalls: []string{"pyright main.py"},
			expExecCalls:    [][]string{{"python3", "main.py"}},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "main.py", []byte(d.source), 0o644); err != nil {
				t.Fatal(err)
			}
			stderr := &bytes.Buffer{}
			ch := &fakeChecker{fail: d.checkerFail, err: d.checkerErr}
			executor := &fakeExecutor{err: d.executorErr}
			ctrl := New(fs, ch, executor, &ParamRun{
				FilePath:        "main.py",
				Pyright:         "pyright",
				Python:          "python3",
				ForbidIteration: d.forbidIteration,
				Stderr:          stderr,
			})
			err := ctrl.Run(context.Background(), logrus.NewEntry(logrus.New()))
			if err != nil {
				if !d.isErr {
					t.Fatal(err)
				}
				if d.errIs != nil && !errors.Is(err, d.errIs) {
					t.Fatalf("wanted %v, got %v", d.errIs, err)
				}
			} else if d.isErr {
				t.Fatal("error must be returned")
			}
			if d.expMessage != "" {
				if !strings.Contains(stderr.String(), d.expMessage) {
					t.Errorf("stderr must contain %q: %q", d.expMessage, stderr.String())
				}
			} else if stderr.Len() != 0 {
				t.Errorf("nothing must be written to stderr: %q", stderr.String())
			}
			if diff := cmp.Diff(d.expCheckerCalls, ch.calls); diff != "" {
				t.Errorf("checker calls: %s", diff)
			}
			if diff := cmp.Diff(d.expExecCalls, executor.calls); diff != "" {
				t.Errorf("interpreter calls: %s", diff)
			}
		})
	}
}

func TestController_Run_malformed(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "main.py", []byte("def f(:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	executor := &fakeExecutor{}
	ctrl := New(fs, &fakeChecker{}, executor, &ParamRun{
		FilePath: "main.py",
		Pyright:  "pyright",
		Python:   "python3",
		Stderr:   &bytes.Buffer{},
	})
	err := ctrl.Run(context.Background(), logrus.NewEntry(logrus.New()))
	var parseErr *pyparse.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("wanted *pyparse.ParseError, got %v", err)
	}
	if errors.Is(err, ErrCheckFailed) {
		t.Fatal("a parse error isn't a rejection")
	}
	if len(executor.calls) != 0 {
		t.Fatal("the interpreter must not be run")
	}
}

func TestController_Run_fileNotFound(t *testing.T) {
	t.Parallel()
	ctrl := New(afero.NewMemMapFs(), &fakeChecker{}, &fakeExecutor{}, &ParamRun{
		FilePath: "missing.py",
		Stderr:   &bytes.Buffer{},
	})
	if err := ctrl.Run(context.Background(), logrus.NewEntry(logrus.New())); err == nil {
		t.Fatal("error must be returned")
	}
}
