// Package di provides dependency injection for the pyright-strict-runner CLI.
// It creates and wires together all the dependencies needed to check and run a file.
package di

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/checker"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/config"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/controller/run"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/exec"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/log"
)

// Stdio holds the standard streams handed to the interpreter.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var errFileRequired = errors.New("a Python file path is required")

// Run executes the main command logic.
// It configures logging, reads the configuration file, and runs the pipeline on the file.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, stdio *Stdio) error {
	log.SetLevel(flags.LogLevel, logE)
	if len(flags.Args) != 1 {
		return errFileRequired
	}

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	cfg.SetDefaults()

	executor := exec.New(stdio.Stdin, stdio.Stdout, stdio.Stderr)
	ctrl := run.New(fs, checker.New(fs, executor, ""), executor, buildParam(flags.Args[0], cfg, stdio))
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

func buildParam(filePath string, cfg *config.Config, stdio *Stdio) *run.ParamRun {
	return &run.ParamRun{
		FilePath:        filePath,
		Pyright:         cfg.Pyright,
		Python:          cfg.Python,
		ForbidIteration: cfg.ForbidIteration,
		Stderr:          stdio.Stderr,
	}
}
