// Package jarpath resolves the location of the stitching tool suite's Java
// archive from the launcher's own installation directory.
package jarpath

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// JarPattern matches the packaged archive inside <root>/target
const JarPattern = "stitching-spark-*.jar"

// Root returns the installation root for a launcher at launcherPath: the
// parent of the parent of the directory holding it. Nothing is checked on disk.
func Root(launcherPath string) string {
	abs, err := filepath.Abs(launcherPath)
	if err != nil {
		abs = filepath.Clean(launcherPath)
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(abs)))
}

// Locate returns the classpath entry for a launcher at launcherPath.
// The lexically greatest <root>/target/stitching-spark-*.jar wins; without
// a match the root directory itself is returned, so the result is the same
// for every call against the same installation. A missing archive is never
// reported here.
func Locate(launcherPath string) string {
	root := Root(launcherPath)

	matches, err := filepath.Glob(filepath.Join(root, "target", JarPattern))
	if err != nil || len(matches) == 0 {
		return root
	}

	sort.Strings(matches)
	return matches[len(matches)-1]
}

// Self returns the path of the running executable with symlinks resolved,
// so a launcher linked onto PATH still points into its installation.
func Self() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to determine executable path: %w", err)
	}

	return Resolve(exe)
}

// Resolve follows symlinks in launcherPath to the installed launcher
func Resolve(launcherPath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(launcherPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path %s: %w", launcherPath, err)
	}

	return resolved, nil
}
