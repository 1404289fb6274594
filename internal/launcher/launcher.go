// Package launcher runs the CZI tile metadata parser from the stitching
// archive as a child process and relays its exit status.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/execabs"

	"parseczi/internal/java"
)

// MainClass is the entry point inside the stitching archive
const MainClass = "org.janelia.stitching.ParseCZITilesMetadata"

// LaunchError reports that the child process could not be started
type LaunchError struct {
	Java string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Java, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a completed child process
type Result struct {
	ExitCode int
}

// Launcher spawns the Java tool with inherited stdio
type Launcher struct {
	javaBin string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// New creates a launcher for the java executable at javaBin
func New(javaBin string) *Launcher {
	return &Launcher{
		javaBin: javaBin,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  slog.Default(),
	}
}

// Command builds the child argv: java -cp <jarPath> MainClass args...
func Command(jarPath string, args []string) []string {
	argv := make([]string, 0, 4+len(args))
	argv = append(argv, java.Command, "-cp", jarPath, MainClass)
	return append(argv, args...)
}

// Run starts the child, waits for it and returns its exit status.
// A non-zero exit is reported in Result, not as an error.
func (l *Launcher) Run(jarPath string, args []string) (Result, error) {
	argv := Command(jarPath, args)

	cmd := execabs.Command(l.javaBin, argv[1:]...)
	// argv[0] stays "java" even when the binary came from java_home
	cmd.Args[0] = argv[0]
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	l.Logger.Debug("launching", "java", l.javaBin, "classpath", jarPath, "args", len(args))

	relay := newSignalRelay(l.Logger)
	defer relay.stop()

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, &LaunchError{Java: l.javaBin, Err: err}
	}

	relay.start(cmd.Process)
	err := cmd.Wait()

	if err == nil {
		return Result{ExitCode: 0}, nil
	}

	var exitErr *execabs.ExitError
	if errors.As(err, &exitErr) {
		code := exitCode(exitErr)
		l.Logger.Debug("child exited", "code", code)
		return Result{ExitCode: code}, nil
	}

	return Result{ExitCode: -1}, fmt.Errorf("failed waiting for %s: %w", l.javaBin, err)
}

// exitCode maps a signal death to 128+signal, the shell convention
func exitCode(exitErr *execabs.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}

// signalRelay forwards SIGINT and SIGTERM to the child while it runs.
// Registration happens before the child starts so no signal can kill the
// launcher in between.
//
// Ctrl-C in a terminal signals the whole foreground process group, so the
// child then sees SIGINT twice: once from the terminal and once relayed.
// The JVM treats the second one as a no-op during shutdown.
type signalRelay struct {
	sigs   chan os.Signal
	done   chan struct{}
	logger *slog.Logger
}

func newSignalRelay(logger *slog.Logger) *signalRelay {
	r := &signalRelay{
		sigs:   make(chan os.Signal, 1),
		done:   make(chan struct{}),
		logger: logger,
	}
	signal.Notify(r.sigs, os.Interrupt, syscall.SIGTERM)
	return r
}

func (r *signalRelay) start(proc *os.Process) {
	go func() {
		for {
			select {
			case sig := <-r.sigs:
				r.logger.Debug("forwarding signal", "signal", sig.String())
				if err := proc.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
					r.logger.Warn("failed to forward signal", "signal", sig.String(), "error", err)
				}
			case <-r.done:
				return
			}
		}
	}()
}

func (r *signalRelay) stop() {
	signal.Stop(r.sigs)
	close(r.done)
}
