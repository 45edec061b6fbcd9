package main

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/controller/run"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/log"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

type HasExitCode interface {
	ExitCode() int
}

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, run.ErrCheckFailed) {
			os.Exit(1)
		}
		var hasExitCode HasExitCode
		if errors.As(err, &hasExitCode) {
			code := hasExitCode.ExitCode()
			if code < 0 {
				// killed by a signal
				code = 1
			}
			os.Exit(code)
		}
		logerr.WithError(logE, err).Fatal("pyright-strict-runner failed")
	}
}

func core(logE *logrus.Entry) error {
	runner := &cli.Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(context.Background(), os.Args...)
}
