package java

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sys/execabs"
)

// Command is the executable name looked up on PATH
const Command = "java"

// ErrJavaNotFound is returned when no usable java executable can be resolved
var ErrJavaNotFound = errors.New("java executable not found")

// Resolver finds the java executable the launcher spawns
type Resolver struct {
	javaHome string
}

// NewResolver creates a resolver. An empty javaHome means PATH lookup.
func NewResolver(javaHome string) *Resolver {
	return &Resolver{javaHome: javaHome}
}

// Find returns the path of the java executable
func (r *Resolver) Find() (string, error) {
	if r.javaHome == "" {
		// execabs refuses results relative to the current directory
		path, err := execabs.LookPath(Command)
		if err != nil {
			return "", fmt.Errorf("%w on PATH: %w", ErrJavaNotFound, err)
		}
		return path, nil
	}

	if !IsValidJavaHome(r.javaHome) {
		return "", fmt.Errorf("%w in java_home %s", ErrJavaNotFound, r.javaHome)
	}
	return Executable(r.javaHome), nil
}

// Executable returns <javaHome>/bin/java (java.exe on Windows)
func Executable(javaHome string) string {
	name := Command
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(javaHome, "bin", name)
}

// IsValidJavaHome checks if a path is a Java installation with a runnable java
func IsValidJavaHome(path string) bool {
	info, err := os.Stat(Executable(path))
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0111 != 0
}
