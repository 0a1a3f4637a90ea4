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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// 📢 Reporter prints per-file notices and the final summary
type Reporter struct {
	out       io.Writer
	formatter FileFormatter
	dryRun    bool
	mu        sync.Mutex
}

// 🏭 NewReporter creates a reporter writing to out
func NewReporter(out io.Writer, formatter FileFormatter, dryRun bool) *Reporter {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &Reporter{
		out:       out,
		formatter: formatter,
		dryRun:    dryRun,
	}
}

// 📝 Report prints the notice for a single result. Unchanged and skipped files
// only reach the debug log.
func (r *Reporter) Report(ctx context.Context, res FileResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zerolog.Ctx(ctx).Debug().
		Str("path", res.Path).
		Str("status", res.Status.String()).
		Int("replacements", res.Replacements).
		AnErr("reason", res.Err).
		Msg("file processed")

	switch res.Status {
	case StatusFixed:
		fmt.Fprintln(r.out, r.formatter.FormatFixed(res.Path, r.dryRun))
		if res.Diff != "" {
			fmt.Fprint(r.out, res.Diff)
		}
	case StatusFailed:
		fmt.Fprintln(r.out, r.formatter.FormatFailed(res.Path, res.Err))
	}
}

// 📊 Finish prints a blank line and the totals
func (r *Reporter) Finish(ctx context.Context, summary *Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fixed := summary.Count(StatusFixed)
	failed := summary.Count(StatusFailed)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.formatter.FormatTotal(fixed, r.dryRun))
	if failed > 0 {
		fmt.Fprintln(r.out, r.formatter.FormatFailedTotal(failed))
	}

	zerolog.Ctx(ctx).Info().
		Str("root", summary.Root).
		Bool("dry_run", summary.DryRun).
		Int("files", summary.Total()).
		Int("fixed", fixed).
		Int("failed", failed).
		Int("skipped", summary.Count(StatusSkipped)).
		Msg("run complete")
}
