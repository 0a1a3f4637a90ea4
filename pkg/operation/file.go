package operation

import (
	"context"
	"unicode/utf8"

	"github.com/walteh/markfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidEncoding is reported for files that are not valid UTF-8
var ErrInvalidEncoding = errors.Base("file is not valid UTF-8")

// 📄 processFile reads one file, normalizes it and writes it back if and only
// if the bytes changed
func (op *BaseOperation) processFile(ctx context.Context, path string, dryRun bool) status.FileResult {
	if err := ctx.Err(); err != nil {
		return status.FileResult{Path: path, Status: status.StatusSkipped, Err: err}
	}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return status.FileResult{Path: path, Status: status.StatusFailed, Err: err}
	}

	if !utf8.Valid(content) {
		return status.FileResult{Path: path, Status: status.StatusFailed, Err: ErrInvalidEncoding}
	}

	result := op.Normalizer.Normalize(content)
	if !result.WasModified {
		return status.FileResult{Path: path, Status: status.StatusUnchanged}
	}

	res := status.FileResult{
		Path:         path,
		Status:       status.StatusFixed,
		Replacements: result.Count,
	}

	if dryRun {
		if op.ShowDiff {
			res.Diff = Diff(path, result.Original, result.Modified)
		}
		return res
	}

	if err := op.Files.WriteFile(ctx, path, result.Modified); err != nil {
		return status.FileResult{Path: path, Status: status.StatusFailed, Err: errors.Errorf("writing fixed content: %w", err)}
	}

	return res
}
