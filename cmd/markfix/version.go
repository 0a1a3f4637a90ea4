// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/markfix/pkg/config"
)

// BuildInfo describes the binary and the defaults it was built with
type BuildInfo struct {
	Version  string
	Revision string
	Dirty    bool
	Go       string
	Platform string

	Defaults *config.Config
}

// ReadBuildInfo collects module and VCS data embedded by the go tool
func ReadBuildInfo() *BuildInfo {
	bi := &BuildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Defaults: config.Default(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Revision = s.Value
		case "vcs.modified":
			bi.Dirty = s.Value == "true"
		}
	}

	return bi
}

// String renders the version block printed by `markfix version`
func (bi *BuildInfo) String() string {
	var sb strings.Builder

	version := bi.Version
	if bi.Revision != "" {
		version += " (" + shortRevision(bi.Revision)
		if bi.Dirty {
			version += ", dirty"
		}
		version += ")"
	}

	fmt.Fprintf(&sb, "🚀 markfix %s\n", version)
	fmt.Fprintf(&sb, "Go:         %s %s\n", bi.Go, bi.Platform)
	fmt.Fprintf(&sb, "Marker:     %q -> %q\n", bi.Defaults.Marker, bi.Defaults.Marker+" - ")
	fmt.Fprintf(&sb, "Extensions: %s\n", strings.Join(bi.Defaults.Extensions, ", "))
	fmt.Fprintf(&sb, "Skipped:    hidden directories, %s\n", strings.Join(bi.Defaults.ExcludeDirs, ", "))
	fmt.Fprintf(&sb, "Config:     %s (yaml, json, hcl or toml)\n", config.DefaultFile)

	return sb.String()
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information and built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), ReadBuildInfo())
			return err
		},
	}
}
