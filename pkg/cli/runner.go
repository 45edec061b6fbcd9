package cli

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/run"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/di"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := run.New(r.LogE, globalFlags, &di.Stdio{
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
		Stderr: r.Stderr,
	})
	cmd.Version = r.LDFlags.Version + " (" + r.LDFlags.Commit + ")"
	cmd.Writer = r.Stdout
	cmd.ErrWriter = r.Stderr
	cmd.Commands = append(cmd.Commands,
		initcmd.New(r.LogE, globalFlags),
		r.newVersionCommand(),
	)
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
