// Package runner provides a thin wrapper for spawning external executables.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CmdError describes a failed command invocation.
type CmdError struct {
	Args   string // full command line
	Stderr string // trailing stderr output, if captured
	Cause  error
}

func (e *CmdError) Error() string {
	msg := fmt.Sprintf("`%s` failed: %v", e.Args, e.Cause)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	return msg
}

func (e *CmdError) Unwrap() error { return e.Cause }

// Runner executes external commands in a fixed working directory.
// The zero value runs commands in the process's working directory and
// discards their standard streams.
type Runner struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and waits for it to finish. Standard streams
// go to the Runner's writers when set. Failures (including a missing
// executable) are returned as a *CmdError.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout

	var stderr bytes.Buffer
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return newCmdError(name, args, err, stderr.String())
	}
	return nil
}

// Output executes the command and returns its captured standard output.
// Stderr is captured separately and included in the error on failure.
func (r *Runner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, newCmdError(name, args, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func newCmdError(name string, args []string, cause error, stderr string) *CmdError {
	line := strings.Join(append([]string{name}, args...), " ")
	return &CmdError{Args: line, Stderr: strings.TrimSpace(stderr), Cause: cause}
}
