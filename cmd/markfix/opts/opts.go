package opts

import (
	"io"

	"github.com/walteh/markfix/pkg/config"
)

// Flag names shared by the root command and config overrides
const (
	FlagConfig         = "config"
	FlagDebug          = "debug"
	FlagMarker         = "marker"
	FlagExt            = "ext"
	FlagExclude        = "exclude"
	FlagExcludePattern = "exclude-pattern"
	FlagIncludeHidden  = "include-hidden"
	FlagFailFast       = "fail-fast"
	FlagJobs           = "jobs"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	Flags      Overrides

	// Config is set once flags are parsed and the config file is loaded
	Config *config.Config

	Stdout io.Writer
	Stderr io.Writer
}

// Overrides are config values given on the command line
type Overrides struct {
	Marker          string
	Extensions      []string
	ExcludeDirs     []string
	ExcludePatterns []string
	IncludeHidden   bool
	FailFast        bool
	Jobs            int
}

// Apply copies every flag the user actually set onto cfg
func (o Overrides) Apply(cfg *config.Config, changed func(name string) bool) {
	if changed(FlagMarker) {
		cfg.Marker = o.Marker
	}
	if changed(FlagExt) {
		cfg.Extensions = o.Extensions
	}
	if changed(FlagExclude) {
		cfg.ExcludeDirs = o.ExcludeDirs
	}
	if changed(FlagExcludePattern) {
		cfg.ExcludePatterns = o.ExcludePatterns
	}
	if changed(FlagIncludeHidden) {
		cfg.IncludeHidden = o.IncludeHidden
	}
	if changed(FlagFailFast) {
		cfg.FailFast = o.FailFast
	}
	if changed(FlagJobs) {
		cfg.Jobs = o.Jobs
	}
}
