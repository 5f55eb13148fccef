// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package services

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/execx"
)

// DefaultCandidates are the web servers checked after a renewal.
var DefaultCandidates = []string{"nginx", "apache2", "httpd"}

// Manager queries and controls system services through an execx.Runner.
type Manager struct {
	// Runner executes systemctl and service commands.
	Runner execx.Runner
	// Candidates are the service names considered for post-renewal reload.
	Candidates []string
}

// NewManager creates a Manager over the default candidate set.
func NewManager(runner execx.Runner) *Manager {
	return &Manager{
		Runner:     runner,
		Candidates: DefaultCandidates,
	}
}

// IsActive reports whether the named service is currently running.
// systemd is queried when present; otherwise the legacy service command's
// exit status decides.
func (m *Manager) IsActive(ctx context.Context, name string) bool {
	if m.Runner.LookPath("systemctl") {
		res, err := m.Runner.Run(ctx, "systemctl", "is-active", "--quiet", name)
		return err == nil && res.ExitCode == 0
	}

	res, err := m.Runner.Run(ctx, "service", name, "status")
	return err == nil && res.ExitCode == 0
}

// Running returns the candidates that are currently active, in candidate
// order.
func (m *Manager) Running(ctx context.Context) []string {
	var running []string
	for _, name := range m.Candidates {
		if m.IsActive(ctx, name) {
			running = append(running, name)
		}
	}
	return running
}

// Reload reloads the named service, falling back to a full restart when the
// graceful reload fails.
//
// Returns:
//   - error: Describes the failure when both reload and restart fail
func (m *Manager) Reload(ctx context.Context, name string) error {
	if m.Runner.LookPath("systemctl") {
		return m.reloadWith(ctx, name,
			[]string{"systemctl", "reload", name},
			[]string{"systemctl", "restart", name},
		)
	}

	return m.reloadWith(ctx, name,
		[]string{"service", name, "reload"},
		[]string{"service", name, "restart"},
	)
}

// reloadWith runs the graceful command and falls back to the forceful one.
func (m *Manager) reloadWith(ctx context.Context, name string, graceful, forceful []string) error {
	res, err := m.Runner.Run(ctx, graceful[0], graceful[1:]...)
	if err == nil && res.ExitCode == 0 {
		return nil
	}

	res, err = m.Runner.Run(ctx, forceful[0], forceful[1:]...)
	if err != nil {
		return fmt.Errorf("services: restart %s: %w", name, err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("services: restart %s exited %d", name, res.ExitCode)
	}
	return nil
}
