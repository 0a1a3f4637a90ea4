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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/markfix/pkg/status"
	"github.com/walteh/markfix/pkg/walk"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ProcessFunc turns one candidate path into a result
type ProcessFunc func(ctx context.Context, path string) status.FileResult

// HandleFunc receives results in traversal order; a non-nil error aborts the run
type HandleFunc func(res status.FileResult) error

// 🏃 Runner drives a ProcessFunc over every candidate below a root
type Runner struct {
	jobs     int
	failFast bool
}

// 🏗️ NewRunner creates a runner processing up to jobs files at once. With
// failFast, the first failed file cancels the files not yet started.
func NewRunner(jobs int, failFast bool) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs, failFast: failFast}
}

// 🏃 Run walks root and hands every result to handle in traversal order
func (r *Runner) Run(ctx context.Context, root string, opts walk.Options, process ProcessFunc, handle HandleFunc) error {
	if r.jobs == 1 {
		return r.runSync(ctx, root, opts, process, handle)
	}
	return r.runAsync(ctx, root, opts, process, handle)
}

// 🔄 runSync handles each file completely before the next one is read
func (r *Runner) runSync(ctx context.Context, root string, opts walk.Options, process ProcessFunc, handle HandleFunc) error {
	return walk.Walk(ctx, root, opts, func(path string) error {
		return handle(process(ctx, path))
	})
}

// ⚡ runAsync collects the candidates first, processes them with bounded
// parallelism and then replays the results in traversal order. Once handle
// aborts, only files that were already written are still handed to it.
func (r *Runner) runAsync(ctx context.Context, root string, opts walk.Options, process ProcessFunc, handle HandleFunc) error {
	paths, err := walk.Collect(ctx, root, opts)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Int("files", len(paths)).Int("jobs", r.jobs).Msg("processing files in parallel")

	results := make([]status.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = process(gctx, path)
			if r.failFast && results[i].Status == status.StatusFailed {
				return errors.Errorf("%s: %w", path, results[i].Err)
			}
			return nil
		})
	}

	// handle reports the first failure in traversal order
	_ = g.Wait()

	var abort error
	for _, res := range results {
		if abort != nil {
			// files after the failure may already be rewritten on disk
			if res.Status == status.StatusFixed {
				_ = handle(res)
			}
			continue
		}
		abort = handle(res)
	}
	if abort != nil {
		return abort
	}

	return ctx.Err()
}
