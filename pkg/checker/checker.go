// Package checker runs Pyright in strict mode against a Python file.
// The file is copied to a scratch file with a "# pyright: strict" directive
// prepended, so strict mode is enforced regardless of the project's Pyright configuration.
package checker

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/exec"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/scan"
)

const (
	// StrictDirective is prepended to the scratch copy of the checked file.
	StrictDirective = "# pyright: strict\n"
	// WarningsFlag makes Pyright exit with a non-zero status on warnings too.
	WarningsFlag = "--warnings"
	// The suffix is required for Pyright to treat the scratch file as Python.
	scratchPattern = "pyright-strict-runner-*.py"
)

type Executor interface {
	Output(ctx context.Context, logE *logrus.Entry, name string, args ...string) (*exec.Result, error)
}

type Checker struct {
	fs       afero.Fs
	executor Executor
	tempDir  string
}

// New returns a Checker. Scratch files are created in tempDir,
// or in the default directory for temporary files if tempDir is empty.
func New(fs afero.Fs, executor Executor, tempDir string) *Checker {
	return &Checker{
		fs:       fs,
		executor: executor,
		tempDir:  tempDir,
	}
}

// Result is the outcome of a Pyright run.
// Output is kept for the user to inspect; it doesn't affect the verdict.
type Result struct {
	Verdict *scan.Verdict
	Output  string
}

// Check reports whether the file at path passes `checkerPath --warnings` in strict mode.
func (c *Checker) Check(ctx context.Context, logE *logrus.Entry, path, checkerPath string) (*Result, error) {
	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", err)
	}
	scratchPath, err := c.writeScratch(content)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := c.fs.Remove(scratchPath); err != nil {
			logE.WithError(err).WithField("scratch_file", scratchPath).Warn("remove a scratch file")
		}
	}()
	logE = logE.WithField("scratch_file", scratchPath)
	logE.Debug("run the type checker")

	out, err := c.executor.Output(ctx, logE, checkerPath, WarningsFlag, scratchPath)
	if err != nil {
		return nil, fmt.Errorf("run the type checker: %w", err)
	}
	result := &Result{
		Verdict: &scan.Verdict{},
		Output:  out.Output,
	}
	if out.ExitCode != 0 {
		logE.WithField("exit_code", out.ExitCode).Debug(out.Output)
		result.Verdict.Add(&scan.Finding{
			Kind: scan.KindCheckerError,
			Text: out.Output,
		})
	}
	return result, nil
}

func (c *Checker) writeScratch(content []byte) (string, error) {
	f, err := afero.TempFile(c.fs, c.tempDir, scratchPattern)
	if err != nil {
		return "", fmt.Errorf("create a scratch file: %w", err)
	}
	name := f.Name()
	if _, err := f.WriteString(StrictDirective); err != nil {
		f.Close()
		c.fs.Remove(name) //nolint:errcheck
		return "", fmt.Errorf("write a scratch file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		c.fs.Remove(name) //nolint:errcheck
		return "", fmt.Errorf("write a scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		c.fs.Remove(name) //nolint:errcheck
		return "", fmt.Errorf("close a scratch file: %w", err)
	}
	return name, nil
}
