package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestFileStatus_String(t *testing.T) {
	tests := []struct {
		status FileStatus
		want   string
	}{
		{StatusFixed, "fixed"},
		{StatusUnchanged, "unchanged"},
		{StatusSkipped, "skipped"},
		{StatusFailed, "failed"},
		{StatusUnknown, "unknown"},
		{FileStatus(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestSummary(t *testing.T) {
	s := NewSummary("/tmp/root", false)
	s.Add(FileResult{Path: "b.swift", Status: StatusFixed, Replacements: 2})
	s.Add(FileResult{Path: "a.swift", Status: StatusUnchanged})
	s.Add(FileResult{Path: "c.swift", Status: StatusFailed, Err: errors.New("boom")})
	s.Add(FileResult{Path: "d.swift", Status: StatusFixed, Replacements: 1})
	s.Add(FileResult{Path: "e.swift", Status: StatusSkipped, Err: errors.New("cancelled")})

	assert.Equal(t, []string{"b.swift", "d.swift"}, s.Fixed())
	assert.Equal(t, 5, s.Total())
	assert.Equal(t, 1, s.Count(StatusUnchanged))
	require.Len(t, s.Failed(), 1)
	assert.Equal(t, "boom", s.Failed()[0].Reason())
	require.Len(t, s.Skipped(), 1)
	assert.Len(t, s.Results(), 5)

	err := s.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFilesFailed)
}

func TestSummary_Err(t *testing.T) {
	tests := []struct {
		name    string
		dryRun  bool
		results []FileResult
		wantErr error
	}{
		{
			name:    "empty",
			results: nil,
		},
		{
			name:    "fixed_files_are_not_an_error",
			results: []FileResult{{Path: "a.swift", Status: StatusFixed}},
		},
		{
			name:    "dry_run_with_changes",
			dryRun:  true,
			results: []FileResult{{Path: "a.swift", Status: StatusFixed}},
			wantErr: ErrChangesNeeded,
		},
		{
			name:    "dry_run_without_changes",
			dryRun:  true,
			results: []FileResult{{Path: "a.swift", Status: StatusUnchanged}},
		},
		{
			name:   "failure_wins_over_changes",
			dryRun: true,
			results: []FileResult{
				{Path: "a.swift", Status: StatusFixed},
				{Path: "b.swift", Status: StatusFailed, Err: errors.New("bad")},
			},
			wantErr: ErrFilesFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSummary(".", tt.dryRun)
			for _, res := range tt.results {
				s.Add(res)
			}

			err := s.Err()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileResult_Reason(t *testing.T) {
	assert.Empty(t, FileResult{}.Reason())
	assert.Equal(t, "nope", FileResult{Err: errors.New("nope")}.Reason())
}
