package main

import (
	"errors"
	"fmt"
	"os"

	"parseczi/internal/config"
	"parseczi/internal/jarpath"
	"parseczi/internal/java"
	"parseczi/internal/launcher"
	"parseczi/internal/logging"
	"parseczi/internal/theme"
)

// Version is set during build time via ldflags
var Version = "dev"

// Exit codes for failures before the Java tool runs, following shell conventions
const (
	exitCannotExecute = 126
	exitNotFound      = 127
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run forwards args to the Java tool and returns the exit code to use
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.WarningMessage(fmt.Sprintf("Ignoring config: %v", err)))
		cfg = config.Default()
	}

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := logging.Logger.With("version", Version)

	self, err := jarpath.Self()
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		return exitCannotExecute
	}
	jarPath := jarpath.Locate(self)
	logger.Debug("resolved classpath", "launcher", self, "classpath", jarPath)

	javaBin, err := java.NewResolver(cfg.JavaHome).Find()
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		fmt.Fprintln(os.Stderr, theme.Hint("Install a Java runtime on PATH or set java_home in "+cfg.Path()))
		return exitNotFound
	}

	l := launcher.New(javaBin)
	l.Logger = logger

	res, err := l.Run(jarPath, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorMessage(err.Error()))
		var launchErr *launcher.LaunchError
		if errors.As(err, &launchErr) && errors.Is(err, os.ErrNotExist) {
			return exitNotFound
		}
		return exitCannotExecute
	}

	return res.ExitCode
}
