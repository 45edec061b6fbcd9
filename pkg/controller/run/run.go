package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/scan"
)

// ErrCheckFailed is returned when the file is rejected by one of the checks.
// The reason has already been printed to stderr.
var ErrCheckFailed = errors.New("the file was rejected")

const (
	MessageDisablingComment = "Pyright-disabling comment in code; kindly remove this"
	MessageTypeError        = "Type error detected by Pyright; kindly check Pyright feedback locally"
	MessageAny              = "Any annotation detected; kindly remove Any annotations"
	MessageIteration        = "Iteration detected; kindly remove for and while loops"
)

type step struct {
	name    string
	message string
	check   func(ctx context.Context, logE *logrus.Entry) (*scan.Verdict, error)
}

func (c *Controller) steps() []*step {
	return []*step{
		{
			name:    "comments",
			message: MessageDisablingComment,
			check:   c.checkComments,
		},
		{
			name:    "pyright",
			message: MessageTypeError,
			check:   c.checkPyright,
		},
		{
			name:    "any",
			message: MessageAny,
			check:   c.checkAny,
		},
		{
			name:    "iteration",
			message: MessageIteration,
			check:   c.checkIteration,
		},
	}
}

// Run validates the file and executes it with the interpreter.
// If the interpreter exits with a non-zero status, the returned error wraps *exec.ExitError.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	logE = logE.WithField("file", c.param.FilePath)
	for _, s := range c.steps() {
		logE := logE.WithField("step", s.name)
		verdict, err := s.check(ctx, logE)
		if err != nil {
			return fmt.Errorf("run the %s check: %w", s.name, err)
		}
		if !verdict.OK() {
			for _, finding := range verdict.Findings() {
				logE.WithFields(logrus.Fields{
					"kind":   finding.Kind.String(),
					"line":   finding.Location.Line,
					"column": finding.Location.Column,
				}).Debug("the file is rejected")
			}
			c.logger.Error(s.message)
			return fmt.Errorf("%s: %w", s.name, ErrCheckFailed)
		}
		logE.Debug("the check passed")
	}
	return c.executor.Run(ctx, logE, c.param.Python, c.param.FilePath) //nolint:wrapcheck
}

func (c *Controller) readSource() ([]byte, error) {
	b, err := afero.ReadFile(c.fs, c.param.FilePath)
	if err != nil {
		return nil, fmt.Errorf("read a file: %w", err)
	}
	return b, nil
}

func (c *Controller) checkComments(_ context.Context, _ *logrus.Entry) (*scan.Verdict, error) {
	source, err := c.readSource()
	if err != nil {
		return nil, err
	}
	return scan.ScanComments(source) //nolint:wrapcheck
}

func (c *Controller) checkPyright(ctx context.Context, logE *logrus.Entry) (*scan.Verdict, error) {
	result, err := c.checker.Check(ctx, logE, c.param.FilePath, c.param.Pyright)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return result.Verdict, nil
}

func (c *Controller) checkAny(_ context.Context, _ *logrus.Entry) (*scan.Verdict, error) {
	source, err := c.readSource()
	if err != nil {
		return nil, err
	}
	return scan.ScanAny(source) //nolint:wrapcheck
}

func (c *Controller) checkIteration(_ context.Context, logE *logrus.Entry) (*scan.Verdict, error) {
	if !c.param.ForbidIteration {
		logE.Debug("skip the check because iteration is allowed")
		return &scan.Verdict{}, nil
	}
	source, err := c.readSource()
	if err != nil {
		return nil, err
	}
	return scan.ScanIteration(source, true) //nolint:wrapcheck
}
