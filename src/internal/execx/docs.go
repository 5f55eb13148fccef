// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package execx runs external commands with enforced timeouts.
// Commands are always invoked with a structured argument vector, never a
// shell-evaluated string, and every invocation runs under a context deadline
// so a wedged system tool cannot hang the process indefinitely.
//
// The Runner interface allows tests to substitute a fake for system tools
// like certbot and systemctl.
package execx
