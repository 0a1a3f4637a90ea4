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

package walk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtensions are the eligible file extensions when none are configured
var DefaultExtensions = []string{".swift"}

// DefaultExcludeDirs are build-artifact directories that are never descended into
var DefaultExcludeDirs = []string{"DerivedData", "build"}

// 🔧 Options controls which directories are pruned and which files are candidates
type Options struct {
	// Extensions a file name must end with to be a candidate
	Extensions []string

	// ExcludeDirs are directory names pruned from traversal
	ExcludeDirs []string

	// ExcludePatterns are doublestar globs matched against the slash separated
	// path relative to the root; matching directories are pruned and matching
	// files are ignored
	ExcludePatterns []string

	// IncludeHidden disables pruning of directories whose name starts with "."
	IncludeHidden bool

	// OnError is called when a directory cannot be read. Returning nil skips
	// the directory and continues the walk. A nil OnError aborts the walk.
	OnError func(path string, err error) error
}

// VisitFunc is called once per candidate file, in lexical depth-first order
type VisitFunc func(path string) error

// 🔍 Matcher decides what is pruned and what is eligible
type Matcher struct {
	extensions    []string
	excludeDirs   map[string]struct{}
	patterns      []string
	includeHidden bool
}

// 🏭 NewMatcher validates options and builds a matcher
func NewMatcher(opts Options) (*Matcher, error) {
	m := &Matcher{
		extensions:    opts.Extensions,
		excludeDirs:   make(map[string]struct{}, len(opts.ExcludeDirs)),
		patterns:      opts.ExcludePatterns,
		includeHidden: opts.IncludeHidden,
	}

	if len(m.extensions) == 0 {
		m.extensions = DefaultExtensions
	}

	for _, name := range opts.ExcludeDirs {
		m.excludeDirs[name] = struct{}{}
	}

	for _, pattern := range opts.ExcludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return m, nil
}

// SkipDir reports whether a directory must not be descended into. rel is the
// slash separated path relative to the root.
func (m *Matcher) SkipDir(name, rel string) bool {
	if !m.includeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	if _, ok := m.excludeDirs[name]; ok {
		return true
	}
	return m.excluded(rel)
}

// Eligible reports whether a file is a candidate
func (m *Matcher) Eligible(name, rel string) bool {
	for _, ext := range m.extensions {
		if strings.HasSuffix(name, ext) {
			return !m.excluded(rel)
		}
	}
	return false
}

func (m *Matcher) excluded(rel string) bool {
	for _, pattern := range m.patterns {
		// patterns were validated in NewMatcher
		if doublestar.MatchUnvalidated(pattern, rel) {
			return true
		}
	}
	return false
}

// 🚶 Walk visits every candidate file below root. Excluded directories are
// pruned before descent, so nothing inside them is ever listed.
func Walk(ctx context.Context, root string, opts Options, fn VisitFunc) error {
	logger := zerolog.Ctx(ctx)

	m, err := NewMatcher(opts)
	if err != nil {
		return err
	}

	info, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return errors.Errorf("root %s is not a directory", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if opts.OnError == nil {
				return errors.Errorf("walking %s: %w", path, err)
			}
			if herr := opts.OnError(path, err); herr != nil {
				return herr
			}
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if m.SkipDir(d.Name(), rel) {
				logger.Debug().Str("dir", path).Msg("pruned directory")
				return fs.SkipDir
			}
			return nil
		}

		if !m.Eligible(d.Name(), rel) {
			return nil
		}

		switch {
		case d.Type().IsRegular():
		case d.Type()&fs.ModeSymlink != 0:
			// linked files are processed through their target, linked
			// directories are never entered
			target, err := os.Stat(path)
			if err != nil || !target.Mode().IsRegular() {
				logger.Debug().Str("path", path).Msg("skipped symlink")
				return nil
			}
		default:
			return nil
		}

		return fn(path)
	})
}

// 📋 Collect returns every candidate file below root in traversal order
func Collect(ctx context.Context, root string, opts Options) ([]string, error) {
	var paths []string
	err := Walk(ctx, root, opts, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, err
	}
	return paths, nil
}
