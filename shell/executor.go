// Package shell runs model-proposed command strings through the host shell
// with a wall-clock timeout and a deny-list of catastrophic literals. The
// human confirmation gate lives with the session loop; deny-list, timeout,
// and confirmation are three independent safeguards, never conflated.
//
// Commands are handed to the shell as opaque strings so pipes and
// redirection work — an intentional trust boundary.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Result is the structured outcome of one command execution.
type Result struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Blocked  bool
	Timeout  time.Duration // Configured bound; set when TimedOut.
}

// Render formats the result as the observation text fed back to the model.
// Failures carry a leading marker so both the model and the human can tell
// them apart from genuine command output.
func (r Result) Render() string {
	switch {
	case r.Blocked:
		return "Error: high-risk command blocked by safety filter."
	case r.TimedOut:
		return fmt.Sprintf("Error: command timed out after %s.", r.Timeout)
	case r.ExitCode != 0:
		return fmt.Sprintf("Execution Error (Exit Code %d):\n%s", r.ExitCode, r.Stderr)
	case strings.TrimSpace(r.Stdout) == "":
		return fmt.Sprintf("Command executed successfully (no output). Stderr: %s", r.Stderr)
	default:
		return r.Stdout
	}
}

// runFunc invokes the host shell. Replaceable in tests to observe or
// suppress real execution.
type runFunc func(ctx context.Context, command string) (stdout, stderr string, exitCode int, err error)

// Executor runs shell command strings with a bounded duration.
type Executor struct {
	timeout  time.Duration
	denyList []string
	run      runFunc
}

// Option configures an Executor after config-driven initialization.
type Option func(*Executor)

// WithRunner replaces the shell invocation, for tests.
func WithRunner(run func(ctx context.Context, command string) (stdout, stderr string, exitCode int, err error)) Option {
	return func(e *Executor) { e.run = run }
}

// WithTimeout overrides the configured execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) { e.timeout = d }
}

// NewExecutor creates an Executor from configuration.
func NewExecutor(cfg *Config, opts ...Option) *Executor {
	e := &Executor{
		timeout:  cfg.timeout(),
		denyList: cfg.DenyList,
		run:      runShell,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute checks the command against the deny-list and, if allowed, hands it
// to the host shell with separate capture of stdout and stderr. Deny-listed
// commands short-circuit to a blocked result without ever invoking the
// shell. A command exceeding the timeout yields a timeout result,
// distinguishable from a normal non-zero exit.
func (e *Executor) Execute(ctx context.Context, command string) Result {
	result := Result{Command: command}

	for _, pattern := range e.denyList {
		if strings.Contains(command, pattern) {
			result.Blocked = true
			return result
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	stdout, stderr, exitCode, err := e.run(runCtx, command)
	result.Stdout = stdout
	result.Stderr = stderr
	result.ExitCode = exitCode

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.Timeout = e.timeout
		return result
	}

	if err != nil && result.ExitCode == 0 {
		// The shell itself failed to start.
		result.ExitCode = -1
		result.Stderr = err.Error()
	}

	return result
}

func runShell(ctx context.Context, command string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			err = nil
		}
	}

	return stdout.String(), stderr.String(), exitCode, err
}
