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
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/markfix/pkg/config"
	"github.com/walteh/markfix/pkg/log"
	"github.com/walteh/markfix/pkg/mark"
	"github.com/walteh/markfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single markfix run over a directory tree
type Operation interface {
	// Execute processes every candidate file below root
	Execute(ctx context.Context, root string) (*status.Summary, error)
}

// 📢 Reporter receives every file result and the final summary
type Reporter interface {
	Report(ctx context.Context, res status.FileResult)
	Finish(ctx context.Context, summary *status.Summary)
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the markfix configuration
	Config *config.Config
	// Reporter prints notices and totals
	Reporter Reporter
	// Normalizer rewrites content; built from Config.Marker when nil
	Normalizer *mark.Normalizer
	// Files performs disk IO; the local file system when nil
	Files status.FileManager
	// ShowDiff attaches a diff to every result of a dry run
	ShowDiff bool
}

// 🧱 BaseOperation holds what fix and check have in common
type BaseOperation struct {
	Options
	runner *Runner
}

// 🏭 NewBaseOperation validates options and fills in defaults
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Reporter == nil {
		return BaseOperation{}, errors.Errorf("reporter is required")
	}

	if opts.Normalizer == nil {
		n, err := mark.New(opts.Config.Marker)
		if err != nil {
			return BaseOperation{}, errors.Errorf("creating normalizer: %w", err)
		}
		opts.Normalizer = n
	}

	if opts.Files == nil {
		opts.Files = status.NewOSFileManager()
	}

	return BaseOperation{
		Options: opts,
		runner:  NewRunner(opts.Config.Jobs, opts.Config.FailFast),
	}, nil
}

// 🔧 Fix normalizes every candidate below root and returns the paths it
// rewrote, in traversal order. Notices and totals are written to out.
func Fix(ctx context.Context, root string, cfg *config.Config, out io.Writer) ([]string, error) {
	op, err := NewFixOperation(Options{
		Config:   cfg,
		Reporter: status.NewReporter(out, nil, false),
	})
	if err != nil {
		return nil, err
	}

	summary, err := op.Execute(ctx, root)
	if err != nil {
		return summary.Fixed(), err
	}

	return summary.Fixed(), summary.Err()
}

// execute is shared by fix and check
func (op *BaseOperation) execute(ctx context.Context, root string, dryRun bool) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx).With().Str("root", root).Logger()
	ctx = logger.WithContext(ctx)

	log.FromContext(ctx).LogRunStart(root, dryRun)

	summary := status.NewSummary(root, dryRun)
	handle := op.handler(ctx, summary)

	walkOpts := op.Config.WalkOptions()
	walkOpts.OnError = func(path string, err error) error {
		return handle(status.FileResult{
			Path:   path,
			Status: status.StatusFailed,
			Err:    errors.Errorf("reading directory: %w", err),
		})
	}

	process := func(ctx context.Context, path string) status.FileResult {
		return op.processFile(ctx, path, dryRun)
	}

	if err := op.runner.Run(ctx, root, walkOpts, process, handle); err != nil {
		return summary, errors.Errorf("processing %s: %w", root, err)
	}

	op.Reporter.Finish(ctx, summary)
	return summary, nil
}

// handler records a result, reports it, and enforces fail-fast
func (op *BaseOperation) handler(ctx context.Context, summary *status.Summary) func(status.FileResult) error {
	user := log.FromContext(ctx)
	return func(res status.FileResult) error {
		summary.Add(res)
		op.Reporter.Report(ctx, res)
		user.LogFileResult(res)

		if res.Status == status.StatusFailed && op.Config.FailFast {
			return errors.Errorf("%s: %w", res.Path, res.Err)
		}
		return nil
	}
}
