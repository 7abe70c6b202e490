package dump

import (
	"os"
	"path/filepath"
	"testing"

	"codedump/pkg/ignore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollectFilesExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x=1")
	writeFile(t, filepath.Join(dir, "b.txt"), "not code")
	writeFile(t, filepath.Join(dir, "nested", "c.py"), "y=2")
	writeFile(t, filepath.Join(dir, "nested", "d.md"), "# doc")

	files, err := CollectFiles([]string{dir}, []string{".py"}, ignore.New(nil), zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "a.py"),
		filepath.Join(dir, "nested", "c.py"),
	}, files)
}

func TestCollectFilesListedFileRequiresMatchingExtension(t *testing.T) {
	dir := t.TempDir()
	matching := filepath.Join(dir, "a.py")
	nonMatching := filepath.Join(dir, "b.txt")
	writeFile(t, matching, "x=1")
	writeFile(t, nonMatching, "not code")

	files, err := CollectFiles([]string{matching, nonMatching}, []string{".py"}, ignore.New(nil), zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{matching}, files)
}

func TestCollectFilesMissingEntryContributesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.py"), "x=1")

	files, err := CollectFiles(
		[]string{filepath.Join(dir, "does-not-exist"), dir},
		[]string{".py"}, ignore.New(nil), zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{filepath.Join(dir, "a.py")}, files)
}

func TestCollectFilesOverlappingEntriesNotDeduplicated(t *testing.T) {
	dir := t.TempDir()
	inside := filepath.Join(dir, "a.py")
	writeFile(t, inside, "x=1")

	files, err := CollectFiles([]string{dir, inside}, []string{".py"}, ignore.New(nil), zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{inside, inside}, files)
}

func TestCollectFilesIncludeOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "z", "z.py")
	second := filepath.Join(dir, "a", "a.py")
	writeFile(t, first, "z=1")
	writeFile(t, second, "a=1")

	// Configured include order wins over any lexical ordering.
	files, err := CollectFiles(
		[]string{filepath.Join(dir, "z"), filepath.Join(dir, "a")},
		[]string{".py"}, ignore.New(nil), zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{first, second}, files)
}

func TestCollectFilesIgnorePatternsPruneDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.py"), "x=1")
	writeFile(t, filepath.Join(dir, "vendor", "skip.py"), "x=2")
	writeFile(t, filepath.Join(dir, "debug.py"), "x=3")

	di := ignore.New(nil)
	di.CompileIgnoreLines("vendor/", "debug.*")

	files, err := CollectFiles([]string{dir}, []string{".py"}, di, zaptest.NewLogger(t), false)
	require.NoError(t, err)

	require.Equal(t, []string{filepath.Join(dir, "keep.py")}, files)
}

func TestMatchesExtensionIsCaseSensitive(t *testing.T) {
	require.True(t, matchesExtension("main.py", []string{".py"}))
	require.False(t, matchesExtension("main.PY", []string{".py"}))
	require.False(t, matchesExtension("main.pyc", []string{".py"}))
	require.True(t, matchesExtension("style.css", []string{".py", ".css"}))
}
