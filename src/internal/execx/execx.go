// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package execx

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/helper/gc"
)

var (
	// ErrToolUnavailable indicates the requested command is not installed.
	ErrToolUnavailable = errors.New("execx: tool unavailable")
)

// Result holds the outcome of a captured command invocation.
type Result struct {
	// Output is the combined stdout and stderr of the command.
	Output []byte
	// ExitCode is the command's exit status. Zero on success.
	ExitCode int
}

// Runner executes external commands.
//
// Run captures combined output; RunInteractive attaches the command to the
// caller's terminal for tools that prompt on stdin (e.g. certbot's manual
// DNS challenge flow). Both honor context cancellation.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
	RunInteractive(ctx context.Context, name string, args ...string) (int, error)
	LookPath(name string) bool
}

// Local runs commands on the local system with a default timeout applied
// when the caller's context carries no deadline.
type Local struct {
	// Timeout is the fallback deadline for invocations whose context has none.
	Timeout time.Duration
}

// NewLocal creates a Local runner with a 10 second default timeout.
func NewLocal() *Local {
	return &Local{Timeout: 10 * time.Second}
}

// withDeadline ensures ctx carries a deadline.
func (l *Local) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// Run executes the command and captures combined stdout and stderr.
//
// A missing binary reports ErrToolUnavailable so callers can degrade instead
// of failing. A nonzero exit is not an error here; it is surfaced through
// Result.ExitCode with err == nil, since several wrapped tools (systemctl
// is-active, service status) communicate state through exit codes.
//
// Parameters:
//   - ctx: Context for cancellation; a deadline is applied if absent
//   - name: Binary name or path
//   - args: Argument vector, passed as-is (no shell evaluation)
//
// Returns:
//   - Result: Combined output and exit code
//   - error: ErrToolUnavailable, context errors, or I/O failures
func (l *Local) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if !l.LookPath(name) {
		return Result{}, ErrToolUnavailable
	}

	ctx, cancel := l.withDeadline(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	// Get a buffer from the pool for the combined output
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	cmd.Stdout = buf
	cmd.Stderr = buf

	err := cmd.Run()
	output := append([]byte(nil), buf.Bytes()...)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Result{Output: output}, ctxErr
			}
			return Result{Output: output, ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{Output: output}, err
	}

	return Result{Output: output}, nil
}

// RunInteractive executes the command attached to the caller's terminal.
// It is used for the renewal command itself, which prompts the operator to
// create DNS records mid-flight.
//
// Returns:
//   - int: The command's exit code (zero on success)
//   - error: ErrToolUnavailable, context errors, or start failures
func (l *Local) RunInteractive(ctx context.Context, name string, args ...string) (int, error) {
	if !l.LookPath(name) {
		return 0, ErrToolUnavailable
	}

	ctx, cancel := l.withDeadline(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return exitErr.ExitCode(), ctxErr
			}
			return exitErr.ExitCode(), nil
		}
		return 0, err
	}

	return 0, nil
}

// LookPath reports whether name resolves to an executable in PATH.
func (l *Local) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
