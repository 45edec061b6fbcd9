package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPyright = "pyright"
	DefaultPython  = "python3"
)

type Config struct {
	Pyright         string `json:"pyright,omitempty" jsonschema:"description=Pyright executable. By default pyright is looked up in PATH"`
	Python          string `json:"python,omitempty" jsonschema:"description=Python interpreter executing the file. By default python3 is looked up in PATH"`
	ForbidIteration bool   `json:"forbid_iteration,omitempty" yaml:"forbid_iteration" jsonschema:"description=Reject for and while statements"`
}

func (c *Config) Init() error {
	if c.Pyright != "" && strings.TrimSpace(c.Pyright) == "" {
		return errors.New("pyright must not be blank")
	}
	if c.Python != "" && strings.TrimSpace(c.Python) == "" {
		return errors.New("python must not be blank")
	}
	return nil
}

// SetDefaults fills executables which are configured neither by flags nor by the configuration file.
func (c *Config) SetDefaults() {
	if c.Pyright == "" {
		c.Pyright = DefaultPyright
	}
	if c.Python == "" {
		c.Python = DefaultPython
	}
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".pyright-strict-runner.yaml", ".pyright-strict-runner.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
