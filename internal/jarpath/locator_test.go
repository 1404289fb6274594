package jarpath

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// install lays out <root>/startup-scripts/spark-local/parseczi and returns root and launcher.
func install(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	scripts := filepath.Join(root, "startup-scripts", "spark-local")
	require.NoError(t, os.MkdirAll(scripts, 0755))

	launcher := filepath.Join(scripts, "parseczi")
	require.NoError(t, os.WriteFile(launcher, nil, 0755))
	return root, launcher
}

func TestRoot_TwoLevelsAboveLauncherDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("volume-less absolute path")
	}
	launcher := filepath.Join(string(filepath.Separator), "opt", "stitching", "startup-scripts", "spark-local", "parseczi")

	assert.Equal(t, filepath.Join(string(filepath.Separator), "opt", "stitching"), Root(launcher))
}

func TestRoot_Deterministic(t *testing.T) {
	_, launcher := install(t)

	first := Root(launcher)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Root(launcher))
	}
}

func TestRoot_IndependentOfWorkingDirectory(t *testing.T) {
	root, launcher := install(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	assert.Equal(t, root, Root(launcher))
}

func TestRoot_NoExistenceCheck(t *testing.T) {
	base := t.TempDir()
	launcher := filepath.Join(base, "missing", "a", "b", "parseczi")

	root := Root(launcher)
	assert.Equal(t, filepath.Join(base, "missing"), root)
	assert.NoDirExists(t, root)
}

func TestLocate_FallsBackToRoot(t *testing.T) {
	root, launcher := install(t)

	assert.Equal(t, root, Locate(launcher))
}

func TestLocate_PrefersPackagedJar(t *testing.T) {
	root, launcher := install(t)
	target := filepath.Join(root, "target")
	require.NoError(t, os.MkdirAll(target, 0755))

	for _, name := range []string{
		"stitching-spark-1.8.0-SNAPSHOT.jar",
		"stitching-spark-1.9.0-SNAPSHOT.jar",
		"unrelated.jar",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(target, name), nil, 0644))
	}

	want := filepath.Join(target, "stitching-spark-1.9.0-SNAPSHOT.jar")
	assert.Equal(t, want, Locate(launcher))
	assert.Equal(t, want, Locate(launcher))
}

func TestSelf(t *testing.T) {
	exe, err := Self()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(exe))
}

func TestResolve_FollowsSymlinkIntoInstallation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root, launcher := install(t)
	link := filepath.Join(t.TempDir(), "parseczi")
	require.NoError(t, os.Symlink(launcher, link))

	resolved, err := Resolve(link)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(launcher)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)

	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, Root(resolved))
	assert.NotEqual(t, Root(link), Root(resolved))
}

func TestResolve_Missing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
