package di

import (
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pyright-strict-runner/pkg/config"
)

// Flags holds all command-line flags for checking and running a file.
type Flags struct {
	*flag.GlobalFlags

	Pyright         string
	Python          string
	ForbidIteration bool
	// ForbidIterationSet is true if --forbid-iteration was passed explicitly,
	// in which case it overrides the configuration file even when false.
	ForbidIterationSet bool

	Args []string
}

// Apply overrides the configuration with flags which are set.
func (f *Flags) Apply(cfg *config.Config) {
	if f.Pyright != "" {
		cfg.Pyright = f.Pyright
	}
	if f.Python != "" {
		cfg.Python = f.Python
	}
	if f.ForbidIterationSet {
		cfg.ForbidIteration = f.ForbidIteration
	}
}
