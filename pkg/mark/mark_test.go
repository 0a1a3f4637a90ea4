package mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         string
		wantCount    int
		wantModified bool
	}{
		{
			name:         "missing_hyphen",
			content:      "// MARK: Setup\n",
			want:         "// MARK: - Setup\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "missing_space_and_hyphen",
			content:      "// MARK:Teardown\n",
			want:         "// MARK: - Teardown\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "already_canonical",
			content:      "// MARK: - Setup\n",
			want:         "// MARK: - Setup\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "both_forms_in_one_file",
			content:      "// MARK: Setup\nfunc a() {}\n// MARK:Teardown\n",
			want:         "// MARK: - Setup\nfunc a() {}\n// MARK: - Teardown\n",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "preserves_surrounding_text",
			content:      "    // MARK: Private Helpers (internal)  \n",
			want:         "    // MARK: - Private Helpers (internal)  \n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "no_marker",
			content:      "let x = 1\n// TODO: later\n",
			want:         "let x = 1\n// TODO: later\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			want:         "",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "hyphen_without_space_is_left_alone",
			content:      "// MARK:-Setup\n",
			want:         "// MARK:-Setup\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "two_spaces_is_left_alone",
			content:      "// MARK:  Setup\n",
			want:         "// MARK:  Setup\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "tab_after_colon_is_left_alone",
			content:      "// MARK:\tSetup\n",
			want:         "// MARK:\tSetup\n",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "marker_at_end_of_file",
			content:      "// MARK:",
			want:         "// MARK:",
			wantCount:    0,
			wantModified: false,
		},
		{
			name:         "marker_inside_string_literal",
			content:      `let s = "// MARK:Label"` + "\n",
			want:         `let s = "// MARK: - Label"` + "\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "non_ascii_label",
			content:      "// MARK: Überblick\n",
			want:         "// MARK: - Überblick\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "crlf_line_endings",
			content:      "// MARK: Setup\r\nlet x = 1\r\n",
			want:         "// MARK: - Setup\r\nlet x = 1\r\n",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:         "marker_without_comment_slashes",
			content:      "MARK: Setup\n",
			want:         "MARK: Setup\n",
			wantCount:    0,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := New(DefaultMarker)
			require.NoError(t, err)

			result := n.Normalize([]byte(tt.content))
			require.NotNil(t, result)

			assert.Equal(t, tt.content, string(result.Original))
			assert.Equal(t, tt.want, string(result.Modified))
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	inputs := []string{
		"// MARK: Setup\n// MARK:Teardown\n// MARK: - Done\n",
		"// MARK:A// MARK: B",
		"no markers at all",
	}

	n, err := New(DefaultMarker)
	require.NoError(t, err)

	for _, input := range inputs {
		once, _ := n.NormalizeString(input)
		twice, count := n.NormalizeString(once)
		assert.Equal(t, once, twice, "input %q", input)
		assert.Zero(t, count, "input %q", input)
	}
}

func TestNormalizer_CustomMarker(t *testing.T) {
	n, err := New("# MARK(x):")
	require.NoError(t, err)

	got, count := n.NormalizeString("# MARK(x):Setup\n# MARK(x): Teardown\n// MARK: Other\n")
	assert.Equal(t, "# MARK(x): - Setup\n# MARK(x): - Teardown\n// MARK: Other\n", got)
	assert.Equal(t, 2, count)
	assert.Equal(t, "# MARK(x):", n.Marker())
}

func TestNew_EmptyMarker(t *testing.T) {
	_, err := New("   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marker is required")
}

func TestNormalizer_RuleOrder(t *testing.T) {
	n, err := New(DefaultMarker)
	require.NoError(t, err)

	rules := n.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "missing_hyphen", rules[0].Name)
	assert.Equal(t, "missing_space", rules[1].Name)
}
