// Package run implements the root command of pyright-strict-runner,
// which checks a Python file and executes it if every check passes.
package run

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/di"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	stdio       *di.Stdio
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, stdio *di.Stdio) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		stdio:       stdio,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &di.Flags{
		GlobalFlags: r.globalFlags,
	}
	return &cli.Command{
		Name:      "pyright-strict-runner",
		Usage:     "Run a Python file only if it passes Pyright strict mode. https://github.com/suzuki-shunsuke/pyright-strict-runner",
		ArgsUsage: "FILE",
		Description: `Check a Python file and run it with the Python interpreter.

$ pyright-strict-runner main.py

The file is rejected if
- it contains "# type: ignore" or "# pyright: ignore" comments
- Pyright reports errors or warnings in strict mode
- it refers to Any
- it contains for or while statements, if --forbid-iteration is set

The exit code of the interpreter is the exit code of pyright-strict-runner.
`,
		Flags: append(r.globalFlags.Flags(),
			&cli.StringFlag{
				Name:        "pyright",
				Usage:       "Pyright executable (default: pyright)",
				Destination: &flags.Pyright,
			},
			&cli.StringFlag{
				Name:        "python",
				Usage:       "Python interpreter (default: python3)",
				Destination: &flags.Python,
			},
			&cli.BoolFlag{
				Name:        "forbid-iteration",
				Usage:       "Reject for and while statements",
				Destination: &flags.ForbidIteration,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			flags.Args = c.Args().Slice()
			flags.ForbidIterationSet = c.IsSet("forbid-iteration")
			return di.Run(ctx, r.logE, flags, r.stdio)
		},
	}
}
