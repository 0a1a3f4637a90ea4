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

package log

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/markfix/pkg/status"
)

// 📢 UserLogger provides user-friendly feedback on stderr
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎯 NewUserLogger creates a new user logger writing to out
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the user logger from context; without one, messages are dropped
func FromContext(ctx context.Context) *UserLogger {
	if u, ok := ctx.Value(contextKey{}).(*UserLogger); ok {
		return u
	}
	return &UserLogger{log: zerolog.Nop(), out: io.Discard}
}

// 🎯 NewContext adds the user logger to context
func NewContext(ctx context.Context, u *UserLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// 📝 LogFileResult reports files that were not processed cleanly
func (u *UserLogger) LogFileResult(res status.FileResult) {
	switch res.Status {
	case status.StatusFailed:
		pterm.Error.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "❌"}).Println(fmt.Sprintf("Failed %s", res.Path))
		if res.Err != nil {
			pterm.Error.WithWriter(u.out).Println(res.Err)
		}
		u.log.Error().Err(res.Err).Str("path", res.Path).Msg("file failed")
	case status.StatusSkipped:
		msg := fmt.Sprintf("Skipped %s", res.Path)
		if res.Err != nil {
			msg += fmt.Sprintf(" (%s)", res.Reason())
		}
		pterm.Warning.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "⏭️"}).Println(msg)
		u.log.Warn().Str("path", res.Path).Str("reason", res.Reason()).Msg("file skipped")
	default:
		u.log.Debug().Str("path", res.Path).Str("status", res.Status.String()).Msg("file processed")
	}
}

// 📊 LogRunStart announces the directory being scanned
func (u *UserLogger) LogRunStart(root string, dryRun bool) {
	mode := "fixing"
	if dryRun {
		mode = "checking"
	}
	u.log.Info().Str("root", root).Bool("dry_run", dryRun).Msgf("%s MARK comments", mode)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}

	if err != nil {
		pterm.Error.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Msg(description)
	} else {
		pterm.Warning.WithWriter(u.out).WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
		u.log.Warn().Msg(description)
	}
}
