package walk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating dir for %s", rel)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644), "writing %s", rel)
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestCollect(t *testing.T) {
	tree := map[string]string{
		"a/Foo.swift":                 "// MARK: Setup",
		"a/Notes.md":                  "// MARK: Setup",
		"a/nested/Deep.swift":         "",
		"b/.git/Bar.swift":            "// MARK: Setup",
		".hidden/Hidden.swift":        "",
		"build/Gen.swift":             "",
		"app/DerivedData/Gen.swift":   "",
		"Pods/Lib/Lib.swift":          "",
		"Root.swift":                  "",
		"a/builder/Kept.swift":        "",
		"a/.swiftpm/Package.swift":    "",
		"c/Thing.swift.orig":          "",
		"c/Generated/Model.swift":     "",
		"c/Generated/Sub/Other.swift": "",
	}

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults",
			opts: Options{ExcludeDirs: DefaultExcludeDirs},
			want: []string{
				"Pods/Lib/Lib.swift",
				"Root.swift",
				"a/Foo.swift",
				"a/builder/Kept.swift",
				"a/nested/Deep.swift",
				"c/Generated/Model.swift",
				"c/Generated/Sub/Other.swift",
			},
		},
		{
			name: "exclude_patterns",
			opts: Options{
				ExcludeDirs:     DefaultExcludeDirs,
				ExcludePatterns: []string{"Pods", "**/Generated", "a/nested/*.swift"},
			},
			want: []string{
				"Root.swift",
				"a/Foo.swift",
				"a/builder/Kept.swift",
			},
		},
		{
			name: "include_hidden",
			opts: Options{ExcludeDirs: DefaultExcludeDirs, IncludeHidden: true},
			want: []string{
				".hidden/Hidden.swift",
				"Pods/Lib/Lib.swift",
				"Root.swift",
				"a/.swiftpm/Package.swift",
				"a/Foo.swift",
				"a/builder/Kept.swift",
				"a/nested/Deep.swift",
				"b/.git/Bar.swift",
				"c/Generated/Model.swift",
				"c/Generated/Sub/Other.swift",
			},
		},
		{
			name: "other_extensions",
			opts: Options{Extensions: []string{".md"}},
			want: []string{"a/Notes.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			root := t.TempDir()
			writeTree(t, root, tree)

			paths, err := Collect(ctx, root, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relAll(t, root, paths))
		})
	}
}

func TestWalk_PrunesBeforeDescent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/Foo.swift":      "",
		"b/.git/Bar.swift": "",
	})

	// An unreadable excluded directory must never be opened.
	var walkErrs []string
	opts := Options{
		ExcludeDirs: DefaultExcludeDirs,
		OnError: func(path string, err error) error {
			walkErrs = append(walkErrs, path)
			return nil
		},
	}
	require.NoError(t, os.Chmod(filepath.Join(root, "b", ".git"), 0000))
	t.Cleanup(func() { os.Chmod(filepath.Join(root, "b", ".git"), 0755) })

	paths, err := Collect(context.Background(), root, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/Foo.swift"}, relAll(t, root, paths))
	assert.Empty(t, walkErrs)
}

func TestWalk_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a/Foo.swift":    "",
		"locked/X.swift": "",
		"z/Zed.swift":    "",
	})
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	t.Run("continue", func(t *testing.T) {
		var failed []string
		paths, err := Collect(context.Background(), root, Options{
			OnError: func(path string, err error) error {
				failed = append(failed, path)
				return nil
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a/Foo.swift", "z/Zed.swift"}, relAll(t, root, paths))
		assert.Equal(t, []string{locked}, failed)
	})

	t.Run("abort", func(t *testing.T) {
		_, err := Collect(context.Background(), root, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "walking")
	})
}

func TestWalk_Symlinks(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"real/Foo.swift": ""})
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "Foo.swift"), filepath.Join(root, "Link.swift")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linkdir.swift")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.swift"), filepath.Join(root, "Broken.swift")))

	paths, err := Collect(context.Background(), root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Link.swift", "real/Foo.swift"}, relAll(t, root, paths))
}

func TestWalk_Errors(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"file.swift": ""})

	t.Run("missing_root", func(t *testing.T) {
		_, err := Collect(context.Background(), filepath.Join(root, "nope"), Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading root")
	})

	t.Run("root_is_file", func(t *testing.T) {
		_, err := Collect(context.Background(), filepath.Join(root, "file.swift"), Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})

	t.Run("invalid_pattern", func(t *testing.T) {
		_, err := Collect(context.Background(), root, Options{ExcludePatterns: []string{"[unclosed"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid exclude pattern")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Collect(ctx, root, Options{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("visit_error_stops_walk", func(t *testing.T) {
		writeTree(t, root, map[string]string{"other.swift": ""})
		calls := 0
		err := Walk(context.Background(), root, Options{}, func(path string) error {
			calls++
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher(Options{
		ExcludeDirs:     []string{"build"},
		ExcludePatterns: []string{"**/Generated/**"},
	})
	require.NoError(t, err)

	assert.True(t, m.SkipDir(".git", "b/.git"))
	assert.True(t, m.SkipDir("build", "x/build"))
	assert.False(t, m.SkipDir("builder", "x/builder"))
	assert.False(t, m.SkipDir("Sources", "Sources"))

	assert.True(t, m.Eligible("Foo.swift", "Foo.swift"))
	assert.False(t, m.Eligible("Foo.swiftx", "Foo.swiftx"))
	assert.False(t, m.Eligible("Foo.swift", "a/Generated/Foo.swift"))
}
