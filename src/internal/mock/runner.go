// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mock provides test doubles for external system interfaces.
package mock

import (
	"context"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/execx"
)

var _ execx.Runner = (*Runner)(nil)

// Runner is a test double for execx.Runner. Each method delegates to the
// corresponding Func field; unset fields yield benign zero results so tests
// only stub what they assert on.
type Runner struct {
	RunFunc            func(ctx context.Context, name string, args ...string) (execx.Result, error)
	RunInteractiveFunc func(ctx context.Context, name string, args ...string) (int, error)
	LookPathFunc       func(name string) bool

	// Calls records every invocation as the full argument vector,
	// command name first.
	Calls [][]string
}

// Run delegates to RunFunc, recording the call.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (execx.Result, error) {
	r.record(name, args)
	if r.RunFunc == nil {
		return execx.Result{}, nil
	}
	return r.RunFunc(ctx, name, args...)
}

// RunInteractive delegates to RunInteractiveFunc, recording the call.
func (r *Runner) RunInteractive(ctx context.Context, name string, args ...string) (int, error) {
	r.record(name, args)
	if r.RunInteractiveFunc == nil {
		return 0, nil
	}
	return r.RunInteractiveFunc(ctx, name, args...)
}

// LookPath delegates to LookPathFunc; unset, every binary "exists".
func (r *Runner) LookPath(name string) bool {
	if r.LookPathFunc == nil {
		return true
	}
	return r.LookPathFunc(name)
}

func (r *Runner) record(name string, args []string) {
	call := append([]string{name}, args...)
	r.Calls = append(r.Calls, call)
}
