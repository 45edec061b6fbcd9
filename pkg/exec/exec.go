// Package exec runs the external tools pyright-strict-runner delegates to:
// the type checker, whose output is captured, and the interpreter, whose
// standard streams are connected to the user's terminal.
// Commands are resolved through PATH and run to completion; no timeout is applied.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"
)

type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func New(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Result is the outcome of a command whose output was captured.
type Result struct {
	ExitCode int
	Output   string
}

// Run runs a command with the standard streams of the Executor.
// If the command exits with a non-zero status, the returned error wraps *exec.ExitError.
func (e *Executor) Run(ctx context.Context, logE *logrus.Entry, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	logE.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
	}).Debug("execute a command")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// Output runs a command and captures its combined stdout and stderr.
// A non-zero exit status isn't an error; it is returned in Result.ExitCode.
// Failing to start the command is an error.
func (e *Executor) Output(ctx context.Context, logE *logrus.Entry, name string, args ...string) (*Result, error) {
	buf := &bytes.Buffer{}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = buf
	cmd.Stderr = buf
	logE.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
	}).Debug("execute a command")
	err := cmd.Run()
	if err == nil {
		return &Result{Output: buf.String()}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Result{
			ExitCode: exitErr.ExitCode(),
			Output:   buf.String(),
		}, nil
	}
	return nil, fmt.Errorf("execute %s: %w", name, err)
}
