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

package status

import (
	"sync"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrFilesFailed is returned when at least one file could not be processed
	ErrFilesFailed = errors.Base("some files could not be processed")

	// ErrChangesNeeded is returned by a dry run that found files to fix
	ErrChangesNeeded = errors.Base("some files need MARK comment fixes")
)

// 📊 FileStatus represents what happened to a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusFixed                // Content changed and was (or would be) written back
	StatusUnchanged            // Content already canonical, file untouched
	StatusSkipped              // File was not processed (e.g. run cancelled)
	StatusFailed               // Reading, decoding or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the outcome of processing one candidate file
type FileResult struct {
	Path         string     // Path as discovered by traversal
	Status       FileStatus // Outcome
	Replacements int        // Number of markers rewritten
	Diff         string     // Optional diff of the change (dry runs)
	Err          error      // Failure or skip reason
}

// Reason returns the error text, if any
func (r FileResult) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// 📋 Summary aggregates file results in traversal order
type Summary struct {
	Root   string
	DryRun bool

	mu      sync.Mutex
	results []FileResult
}

// 🏭 NewSummary creates an empty summary for a run
func NewSummary(root string, dryRun bool) *Summary {
	return &Summary{
		Root:   root,
		DryRun: dryRun,
	}
}

// Add appends a result
func (s *Summary) Add(res FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, res)
}

// Results returns a copy of every recorded result
func (s *Summary) Results() []FileResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FileResult, len(s.results))
	copy(out, s.results)
	return out
}

// Fixed returns the paths of fixed files in the order they were discovered
func (s *Summary) Fixed() []string {
	var paths []string
	for _, res := range s.filter(StatusFixed) {
		paths = append(paths, res.Path)
	}
	return paths
}

// Failed returns every failed result
func (s *Summary) Failed() []FileResult {
	return s.filter(StatusFailed)
}

// Skipped returns every skipped result
func (s *Summary) Skipped() []FileResult {
	return s.filter(StatusSkipped)
}

// Count returns how many results have the given status
func (s *Summary) Count(status FileStatus) int {
	return len(s.filter(status))
}

// Total returns how many files were considered
func (s *Summary) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// 🚦 Err maps the summary onto the process outcome
func (s *Summary) Err() error {
	if n := s.Count(StatusFailed); n > 0 {
		return errors.WithDetails(ErrFilesFailed, "failed", n)
	}
	if s.DryRun && s.Count(StatusFixed) > 0 {
		return errors.WithDetails(ErrChangesNeeded, "files", s.Count(StatusFixed))
	}
	return nil
}

func (s *Summary) filter(status FileStatus) []FileResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []FileResult
	for _, res := range s.results {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return out
}
