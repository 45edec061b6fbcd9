package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/pyright-strict-runner/refs/heads/main/json-schema/pyright-strict-runner.json
# pyright-strict-runner - https://github.com/suzuki-shunsuke/pyright-strict-runner
# Command line flags take precedence over this file.

# Pyright executable
# pyright: pyright

# Python interpreter executing the file
# python: python3

# Reject for and while statements
forbid_iteration: false
`
	filePermission os.FileMode = 0o644
)

// Controller creates the configuration file of pyright-strict-runner.
type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}

// Init creates a configuration file if it doesn't exist.
// An existing file is left untouched.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
