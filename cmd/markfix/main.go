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
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/walteh/markfix/pkg/log"
	"github.com/walteh/markfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and maps the outcome onto an exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		userLogger := log.NewUserLogger(ctx, stderr)
		switch {
		case errors.Is(err, status.ErrChangesNeeded):
			userLogger.LogValidation(false, "MARK comments need fixing, run markfix fix", nil)
		case errors.Is(err, status.ErrFilesFailed):
			userLogger.LogValidation(false, "Some files could not be fixed", err)
		default:
			userLogger.LogValidation(false, "markfix failed", err)
		}
		return 1
	}

	return 0
}
