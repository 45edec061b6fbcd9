// Package initcmd implements the 'pyright-strict-runner init' command,
// which creates a configuration file with commented defaults.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .pyright-strict-runner.yaml if it doesn't exist",
		Description: `Create .pyright-strict-runner.yaml if it doesn't exist

$ pyright-strict-runner init

You can also pass configuration file path.

e.g.

$ pyright-strict-runner init ci/pyright-strict-runner.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".pyright-strict-runner.yaml"
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
