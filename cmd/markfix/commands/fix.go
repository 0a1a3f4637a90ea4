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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/markfix/cmd/markfix/opts"
	"github.com/walteh/markfix/pkg/operation"
	"github.com/walteh/markfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// RootArg returns the directory to scan: the first argument, or "."
func RootArg(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "."
	}
	return args[0]
}

// NewFixCmd creates a new fix command
func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [root]",
		Short: "Rewrite malformed MARK comments in place",
		Long: `Fix walks root (default ".") and rewrites every "// MARK: Label" and
"// MARK:Label" comment into "// MARK: - Label".
It will:
1. Skip hidden directories and the configured build directories
2. Read every file with a configured extension
3. Write back only the files whose content changed
4. Print each fixed file and the total

Symlinked files are fixed through their target and the link is kept.
Symlinked directories are never entered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunFix(cmd.Context(), opts, RootArg(args))
		},
	}

	return cmd
}

// RunFix runs the fix operation on root
func RunFix(ctx context.Context, opts *opts.RootOpts, root string) error {
	ctx = zerolog.Ctx(ctx).With().Str("command", "fix").Logger().WithContext(ctx)

	op, err := operation.NewFixOperation(operation.Options{
		Config:   opts.Config,
		Reporter: status.NewReporter(opts.Stdout, nil, false),
	})
	if err != nil {
		return errors.Errorf("creating fix operation: %w", err)
	}

	summary, err := op.Execute(ctx, root)
	if err != nil {
		return errors.Errorf("fixing MARK comments: %w", err)
	}

	return summary.Err()
}
