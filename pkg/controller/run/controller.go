// Package run implements the gatekeeping pipeline of pyright-strict-runner.
// The controller checks a single Python file for comments disabling Pyright,
// runs Pyright in strict mode against it, rejects Any and, optionally,
// for and while statements, and only then executes the file with the Python interpreter.
// Checks run in a fixed order and the first failing check aborts the pipeline
// with a single-line message telling the user what to remove.
package run

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/checker"
)

type Controller struct {
	fs       afero.Fs
	checker  Checker
	executor Executor
	param    *ParamRun
	logger   *Logger
}

type Checker interface {
	Check(ctx context.Context, logE *logrus.Entry, path, checkerPath string) (*checker.Result, error)
}

type Executor interface {
	Run(ctx context.Context, logE *logrus.Entry, name string, args ...string) error
}

type ParamRun struct {
	FilePath        string
	Pyright         string
	Python          string
	ForbidIteration bool
	Stderr          io.Writer
}

func New(fs afero.Fs, checker Checker, executor Executor, param *ParamRun) *Controller {
	return &Controller{
		fs:       fs,
		checker:  checker,
		executor: executor,
		param:    param,
		logger:   NewLogger(param.Stderr),
	}
}
