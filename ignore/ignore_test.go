package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestWhitelistOverridesLastMatchWins(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "*.log\n!keep.log\n")
	write(t, filepath.Join(root, "a.log"), "")
	write(t, filepath.Join(root, "keep.log"), "")

	e := New(IgnoreFileName, root)
	require.False(t, e.Allow(filepath.Join(root, "a.log"), false))
	require.True(t, e.Allow(filepath.Join(root, "keep.log"), false))
}

func TestExcludedDirectoryWithWhitelistedDescendantStillDescended(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "build/\n")
	write(t, filepath.Join(root, "build", ".isccignore"), "!keep.bin\n")
	write(t, filepath.Join(root, "build", "keep.bin"), "")

	e := New(IgnoreFileName, root)
	buildDir := filepath.Join(root, "build")
	require.False(t, e.Allow(buildDir, true), "build/ itself should be excluded")
	require.True(t, e.Descend(buildDir), "build/ must still be descended for keep.bin")

	inner := e.withRulesFrom(buildDir)
	require.True(t, inner.Allow(filepath.Join(buildDir, "keep.bin"), false))
}

func TestCascadingRulesAreAdditive(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "*.tmp\n")
	write(t, filepath.Join(root, "sub", ".isccignore"), "*.bak\n")
	write(t, filepath.Join(root, "sub", "a.tmp"), "")
	write(t, filepath.Join(root, "sub", "a.bak"), "")
	write(t, filepath.Join(root, "sub", "a.keep"), "")

	rootEngine := New(IgnoreFileName, root)
	sub := rootEngine.Enter(filepath.Join(root, "sub"))

	require.False(t, sub.Allow(filepath.Join(root, "sub", "a.tmp"), false), "parent rule must still apply")
	require.False(t, sub.Allow(filepath.Join(root, "sub", "a.bak"), false), "subdirectory's own rule must apply")
	require.True(t, sub.Allow(filepath.Join(root, "sub", "a.keep"), false))
}

func TestDirOnlyRuleDoesNotMatchFiles(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "target/\n")
	write(t, filepath.Join(root, "target"), "") // a *file* named "target"

	e := New(IgnoreFileName, root)
	require.True(t, e.Allow(filepath.Join(root, "target"), false), "dir-only rule must not match a file")
}

func TestISCCFilterDropsIsccJSONUnconditionally(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".isccignore"), "!*.iscc.json\n")
	write(t, filepath.Join(root, "a.iscc.json"), "")

	f := NewISCCFilter(root)
	require.False(t, f.Allow(filepath.Join(root, "a.iscc.json"), false), "whitelisting must not resurrect .iscc.json files")
}
